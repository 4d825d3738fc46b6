package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

const (
	// MaxPhotoSizeMB caps each uploaded image.
	MaxPhotoSizeMB = 5
	// MaxPhotosPerUpload caps how many photos one multipart call may carry.
	MaxPhotosPerUpload = 5
)

// ValidateImage checks size and sniffed content type of one uploaded photo.
// The MIME type comes from the first 512 bytes, not from the client header.
func ValidateImage(fileHeader *multipart.FileHeader, file io.ReadSeeker) error {
	maxBytes := int64(MaxPhotoSizeMB) * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return fmt.Errorf("arquivo %q excede o limite de %d MB", fileHeader.Filename, MaxPhotoSizeMB)
	}

	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && err != io.EOF {
		return fmt.Errorf("erro lendo arquivo %q", fileHeader.Filename)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("erro processando arquivo %q", fileHeader.Filename)
	}

	mimeType := http.DetectContentType(buffer)
	if !strings.HasPrefix(mimeType, "image/") {
		return fmt.Errorf("apenas imagens são permitidas (recebido %s)", mimeType)
	}
	return nil
}
