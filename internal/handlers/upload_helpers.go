package handlers

import (
	"context"
	"io"
	"log"
	"mime/multipart"

	"github.com/ChiniHendi2004/appointment-api/internal/storage"
)

// saveUpload streams a multipart file into the content store under a
// generated name and returns the stored relative path.
func saveUpload(
	ctx context.Context,
	fs storage.FileStore,
	dir string,
	fh *multipart.FileHeader,
) (string, error) {

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	path := storage.NewUploadPath(dir, fh.Filename)
	if err := fs.Save(ctx, path, data, fh.Header.Get("Content-Type")); err != nil {
		return "", err
	}

	return path, nil
}

// deleteOldFile runs after the pointer swap; losing the delete only
// leaks a file, never the record.
func deleteOldFile(ctx context.Context, fs storage.FileStore, path string) {
	if path == "" {
		return
	}
	if err := fs.Delete(ctx, path); err != nil {
		log.Println("delete old upload:", err)
	}
}
