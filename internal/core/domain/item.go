package domain

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
)

// InputItem represents one user-supplied file awaiting conversion.
// Items are immutable once handed to the core: strategies only read
// Content, never mutate it.
type InputItem struct {
	// ID is the unique identifier within an upload batch.
	ID string

	// Name is the display name, usually the original filename.
	Name string

	// MIMEType is the declared or sniffed content type.
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}

// Size returns the byte length of the item.
func (i InputItem) Size() int64 {
	return int64(len(i.Content))
}

// NewInputItem creates an InputItem with a fresh identifier.
// If mimeType is empty, the type is resolved from the filename
// extension first and the content's leading bytes second.
func NewInputItem(name, mimeType string, content []byte) InputItem {
	if mimeType == "" {
		mimeType = SniffMIMEType(name, content)
	}
	return InputItem{
		ID:       uuid.New().String(),
		Name:     name,
		MIMEType: mimeType,
		Content:  content,
	}
}

// SniffMIMEType resolves a media type from a filename extension,
// falling back to content sniffing. The extension wins because
// http.DetectContentType cannot distinguish text kinds and reports
// ZIP-based formats such as docx as plain archives.
func SniffMIMEType(name string, content []byte) string {
	if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
		return byExt
	}
	switch filepath.Ext(name) {
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	}
	return http.DetectContentType(content)
}

// IsPDF reports whether the item declares the PDF media type.
func (i InputItem) IsPDF() bool {
	return i.MIMEType == "application/pdf"
}
