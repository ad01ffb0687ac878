package booking

// SlotState tags each catalog slot in a resolved day.
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotBooked    SlotState = "booked"
	SlotBlocked   SlotState = "blocked"
)

type Slot struct {
	Label string    `json:"time_slot"`
	State SlotState `json:"state"`
}

// AppointmentView decorates an appointment with the counterparty's
// profile fields for the listing endpoints.
type AppointmentView struct {
	ID         uint   `json:"id"`
	ProviderID uint   `json:"provider_id"`
	CustomerID uint   `json:"customer_id"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time_slot"`
	Status     int    `json:"status"`

	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	PhoneNo     string `json:"phone_no"`
	State       string `json:"state"`
	District    string `json:"district"`
	Village     string `json:"village"`
	Pincode     string `json:"pincode"`
	Role        string `json:"role"`
	ProfileImg  string `json:"profile_img"`
}
