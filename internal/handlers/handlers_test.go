package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ChiniHendi2004/appointment-api/internal/config"
	dbpkg "github.com/ChiniHendi2004/appointment-api/internal/db"
	"github.com/ChiniHendi2004/appointment-api/internal/models"
	"github.com/ChiniHendi2004/appointment-api/internal/routes"
	"github.com/ChiniHendi2004/appointment-api/internal/storage"
)

// ======================================================
// TEST SERVER
// ======================================================

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		PublicBaseURL:    "http://api.test",
		EmailDomainCheck: false,
	}

	r := gin.New()
	routes.RegisterRoutes(r, gdb, cfg, storage.NewLocal(t.TempDir()), nil)
	return r, gdb
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	}
	return w, out
}

func register(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()

	w, body := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name":                  name,
		"email":                 email,
		"password":              "secret123",
		"password_confirmation": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// ======================================================
// AUTH
// ======================================================

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name":                  "Asha",
		"email":                 "asha@example.com",
		"password":              "secret123",
		"password_confirmation": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "Asha", user["name"])
	assert.Equal(t, "asha@example.com", user["email"])

	// duplicate email
	w, body = doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name":                  "Asha",
		"email":                 "ASHA@example.com",
		"password":              "secret123",
		"password_confirmation": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email_already_exists", body["error_code"])

	// good login
	w, body = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["status"])
	assert.NotEmpty(t, body["token"])

	// bad password
	w, body = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", body["error_code"])

	// unknown email
	w, body = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", body["error_code"])
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name":                  "Asha",
		"email":                 "asha@example.com",
		"password":              "secret123",
		"password_confirmation": "different",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "password_mismatch", body["error_code"])
}

func TestRegisterStorageFault(t *testing.T) {
	r, gdb := newTestServer(t)

	// a broken schema must surface as a 500, not as "email free"
	require.NoError(t, gdb.Migrator().DropTable(&models.User{}))

	w, body := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name":                  "Asha",
		"email":                 "asha@example.com",
		"password":              "secret123",
		"password_confirmation": "secret123",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "internal_error", body["error_code"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["status"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/book-slot", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMeAndLogout(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "Asha", "asha@example.com")

	w, body := doJSON(t, r, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "asha@example.com", data["email"])

	w, body = doJSON(t, r, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully logged out", body["message"])

	// stateless tokens keep working after logout
	w, _ = doJSON(t, r, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// ======================================================
// BOOKING FLOW
// ======================================================

func TestBookAndCancelFlow(t *testing.T) {
	r, _ := newTestServer(t)

	providerToken := register(t, r, "Provider", "provider@example.com")
	customerToken := register(t, r, "Customer", "customer@example.com")
	outsiderToken := register(t, r, "Outsider", "outsider@example.com")

	// provider is user 1
	book := gin.H{
		"provider_id": 1,
		"date":        "2025-06-01",
		"time_slot":   "10:00-10:30",
	}

	w, body := doJSON(t, r, http.MethodPost, "/api/book-slot", customerToken, book)
	require.Equal(t, http.StatusOK, w.Code, "body: %v", body)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "Appointment booked successfully", body["message"])

	data := body["data"].(map[string]any)
	appointmentID := data["appointment_id"].(float64)
	require.NotZero(t, appointmentID)

	// second booking for the same tuple loses
	w, body = doJSON(t, r, http.MethodPost, "/api/book-slot", outsiderToken, book)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "slot_unavailable", body["error_code"])
	assert.Equal(t, "Slot is not available", body["message"])

	// outsider may not cancel
	w, body = doJSON(t, r, http.MethodPost, "/api/cancel-appointment", outsiderToken, gin.H{
		"appointment_id": appointmentID,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", body["error_code"])

	// customer sees it listed
	w, body = doJSON(t, r, http.MethodGet, "/api/user-appointments", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 1)

	// provider sees it too
	w, body = doJSON(t, r, http.MethodGet, "/api/my-appointments", providerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 1)

	// provider cancels
	w, body = doJSON(t, r, http.MethodPost, "/api/cancel-appointment", providerToken, gin.H{
		"appointment_id": appointmentID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Appointment cancelled successfully", body["message"])

	// cancelling again is rejected as already cancelled
	w, body = doJSON(t, r, http.MethodPost, "/api/cancel-appointment", customerToken, gin.H{
		"appointment_id": appointmentID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_state", body["error_code"])

	// listings no longer include it
	w, body = doJSON(t, r, http.MethodGet, "/api/user-appointments", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["data"])
}

func TestBookSlotValidationErrors(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "Customer", "customer@example.com")

	w, body := doJSON(t, r, http.MethodPost, "/api/book-slot", token, gin.H{
		"provider_id": 1,
		"date":        "not-a-date",
		"time_slot":   "10:00-10:30",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", body["error_code"])

	w, body = doJSON(t, r, http.MethodPost, "/api/book-slot", token, gin.H{
		"date": "2025-06-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", body["error_code"])
}

func TestTodayAppointmentsEmpty(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "Provider", "provider@example.com")

	w, body := doJSON(t, r, http.MethodGet, "/api/today-appointments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "No appointments found", body["message"])
}

// ======================================================
// AVAILABILITY
// ======================================================

func TestAvailabilityEndpoints(t *testing.T) {
	r, _ := newTestServer(t)

	providerToken := register(t, r, "Provider", "provider@example.com")
	customerToken := register(t, r, "Customer", "customer@example.com")

	w, body := doJSON(t, r, http.MethodPost, "/api/set-unavailability", providerToken, gin.H{
		"date":      "2025-06-01",
		"time_slot": "09:00-09:30",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %v", body)
	assert.Equal(t, "Unavailability saved successfully", body["message"])

	w, body = doJSON(t, r, http.MethodPost, "/api/book-slot", customerToken, gin.H{
		"provider_id": 1,
		"date":        "2025-06-01",
		"time_slot":   "10:00-10:30",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %v", body)

	// customer reads the provider's calendar
	w, body = doJSON(t, r, http.MethodGet, "/api/get-available-slots/2025-06-01?provider_id=1", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "2025-06-01", data["date"])

	labels := data["available_slots"].([]any)
	assert.NotContains(t, labels, "09:00-09:30")
	assert.NotContains(t, labels, "10:00-10:30")
	assert.Contains(t, labels, "11:00-11:30")

	// tagged view
	w, body = doJSON(t, r, http.MethodGet, "/api/get-slots/2025-06-01?provider_id=1", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data = body["data"].(map[string]any)
	states := map[string]string{}
	for _, raw := range data["slots"].([]any) {
		s := raw.(map[string]any)
		states[s["time_slot"].(string)] = s["state"].(string)
	}
	assert.Equal(t, "blocked", states["09:00-09:30"])
	assert.Equal(t, "booked", states["10:00-10:30"])
	assert.Equal(t, "available", states["11:00-11:30"])

	// no provider_id query defaults to the caller's own calendar
	w, body = doJSON(t, r, http.MethodGet, "/api/get-available-slots/2025-06-01", providerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = body["data"].(map[string]any)
	assert.NotContains(t, data["available_slots"].([]any), "09:00-09:30")

	// bad provider_id query
	w, body = doJSON(t, r, http.MethodGet, "/api/get-available-slots/2025-06-01?provider_id=abc", customerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_provider_id", body["error_code"])

	// bad date
	w, body = doJSON(t, r, http.MethodGet, "/api/get-slots/someday", providerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", body["error_code"])
}

// ======================================================
// PROFILE DATA
// ======================================================

func TestPersonalInfoLifecycle(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "Asha", "asha@example.com")

	// nothing yet
	w, body := doJSON(t, r, http.MethodGet, "/api/fetch-profile", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "profile_not_found", body["error_code"])

	payload := gin.H{
		"full_name": "Asha Devi",
		"dob":       "1990-01-01",
		"gender":    "female",
		"email":     "asha@example.com",
		"phone":     "9876543210",
		"state":     "Karnataka",
		"district":  "Mysuru",
		"village":   "Hebbal",
		"pincode":   "570016",
		"role":      "provider",
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/personal-info/create", token, payload)
	require.Equal(t, http.StatusOK, w.Code, "body: %v", body)
	assert.Equal(t, "Inserted successfully", body["message"])

	// same endpoint updates once a record exists
	payload["full_name"] = "Asha D."
	w, body = doJSON(t, r, http.MethodPost, "/api/personal-info/create", token, payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Updated successfully", body["message"])

	w, body = doJSON(t, r, http.MethodGet, "/api/personal-info/get", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := body["data"].([]any)
	require.Len(t, records, 1)
	assert.Equal(t, "Asha D.", records[0].(map[string]any)["full_name"])

	// profile endpoint now resolves, image defaults to the placeholder
	w, body = doJSON(t, r, http.MethodGet, "/api/fetch-profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Asha D.", data["full_name"])
	assert.Equal(t, "http://api.test/assets/images/dummy-profile.png", data["profile_img"])
}

func TestUsersByRole(t *testing.T) {
	r, _ := newTestServer(t)

	providerToken := register(t, r, "Provider", "provider@example.com")
	customerToken := register(t, r, "Customer", "customer@example.com")

	_, _ = doJSON(t, r, http.MethodPost, "/api/personal-info/create", providerToken, gin.H{
		"full_name": "Provider One", "role": "provider",
	})
	_, _ = doJSON(t, r, http.MethodPost, "/api/personal-info/create", customerToken, gin.H{
		"full_name": "Customer One", "role": "customer",
	})

	w, body := doJSON(t, r, http.MethodGet, "/api/users-by-role?role=provider", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	records := body["data"].([]any)
	require.Len(t, records, 1)
	assert.Equal(t, "Provider One", records[0].(map[string]any)["full_name"])
}

func TestWorkInfoLifecycle(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "Asha", "asha@example.com")

	w, body := doJSON(t, r, http.MethodPost, "/api/work-info/create", token, gin.H{
		"work_name":       "Carpentry",
		"company_name":    "Self employed",
		"position":        "Owner",
		"duration":        "5 years",
		"current_working": "yes",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %v", body)
	assert.Equal(t, "Inserted successfully", body["message"])

	w, body = doJSON(t, r, http.MethodPost, "/api/work-info/create", token, gin.H{
		"work_name": "Plumbing",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Updated successfully", body["message"])

	w, body = doJSON(t, r, http.MethodGet, "/api/work-info/get", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := body["data"].([]any)
	require.Len(t, records, 1)
	assert.Equal(t, "Plumbing", records[0].(map[string]any)["work_name"])
}

func postEducation(t *testing.T, r *gin.Engine, token, qualification, specialization string, fileContent []byte) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if qualification != "" {
		require.NoError(t, mw.WriteField("qualification", qualification))
	}
	if specialization != "" {
		require.NoError(t, mw.WriteField("institute_specialization", specialization))
	}
	if fileContent != nil {
		fw, err := mw.CreateFormFile("file", "certificate.pdf")
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/education-info/create", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return w, out
}

func TestEducationInfoLifecycle(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "Asha", "asha@example.com")

	// empty record reads as null data
	w, body := doJSON(t, r, http.MethodGet, "/api/education-info/get", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body["data"])

	// missing required fields
	w, body = postEducation(t, r, token, "B.Sc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", body["error_code"])

	// create with a certificate file
	w, body = postEducation(t, r, token, "B.Sc", "Mysore University", []byte("%PDF-1.4 fake"))
	require.Equal(t, http.StatusOK, w.Code, "body: %v", body)
	assert.Equal(t, "Inserted successfully", body["message"])

	data := body["data"].(map[string]any)
	fileURL, _ := data["file_url"].(string)
	require.NotEmpty(t, fileURL)
	assert.True(t, strings.HasPrefix(fileURL, "http://api.test/storage/education_files/"))
	assert.True(t, strings.HasSuffix(fileURL, ".pdf"))

	// update without a file keeps the stored one
	w, body = postEducation(t, r, token, "M.Sc", "Mysore University", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Updated successfully", body["message"])
	data = body["data"].(map[string]any)
	assert.Equal(t, fileURL, data["file_url"])

	// update with a new file swaps the pointer
	w, body = postEducation(t, r, token, "M.Sc", "Mysore University", []byte("%PDF-1.4 newer"))
	require.Equal(t, http.StatusOK, w.Code)
	data = body["data"].(map[string]any)
	assert.NotEqual(t, fileURL, data["file_url"])

	w, body = doJSON(t, r, http.MethodGet, "/api/education-info/get", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = body["data"].(map[string]any)
	assert.Equal(t, "M.Sc", data["qualification"])
}

func TestBusinessInfoLifecycle(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "Asha", "asha@example.com")

	w, body := doJSON(t, r, http.MethodGet, "/api/business-info", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "business_not_found", body["error_code"])

	// form post without a logo
	form := url.Values{}
	form.Set("business_name", "Asha Services")
	form.Set("business_type", "plumbing")
	form.Set("business_address", "12 Main Road")
	form.Set("city", "Mysuru")
	form.Set("state", "Karnataka")
	form.Set("district", "Mysuru")
	form.Set("pincode", "570016")

	req := httptest.NewRequest(http.MethodPost, "/api/business-info", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Business information saved successfully")

	w, body = doJSON(t, r, http.MethodGet, "/api/business-info", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Asha Services", data["business_name"])

	// second post updates the same record
	req = httptest.NewRequest(http.MethodPost, "/api/business-info", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Business information updated successfully")
}
