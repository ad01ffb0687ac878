// Package storage is the content store for uploaded files (profile
// images, qualification documents, business logos). Files are addressed
// by a relative path; the store never owns the pointer kept in the
// database. Replacement follows write-new, swap-pointer, delete-old so a
// failed write never loses the previous file.
package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type FileStore interface {
	Save(ctx context.Context, path string, data []byte, contentType string) error
	Delete(ctx context.Context, path string) error
}

// NewUploadPath builds a collision-free relative path inside dir,
// keeping the original extension.
func NewUploadPath(dir, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return dir + "/" + uuid.New().String() + ext
}

// --------------------------------------------------
// Local disk store
// --------------------------------------------------

type Local struct {
	root string
}

func NewLocal(root string) *Local {
	return &Local{root: root}
}

func (s *Local) Save(_ context.Context, path string, data []byte, _ string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	return os.WriteFile(full, data, 0o644)
}

func (s *Local) Delete(_ context.Context, path string) error {
	return os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
}

var _ FileStore = (*Local)(nil)
