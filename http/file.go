package http

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// File is a file-like payload. Type is its MIME type and becomes the
// Content-Type of a ContentFile request.
type File struct {
	Name    string
	Type    string
	Content []byte
}

// OpenFile reads the file at path. Its type is resolved from the
// extension, falling back to sniffing the content.
func OpenFile(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("error reading file: %w", err)
	}

	typ := mime.TypeByExtension(filepath.Ext(path))
	if typ == "" {
		typ = http.DetectContentType(content)
	}

	return File{
		Name:    filepath.Base(path),
		Type:    typ,
		Content: content,
	}, nil
}
