package storage

import (
	"strings"

	"github.com/Frabbi727/mine-portfolio/errs"
)

// MaxUploadSize is the upper bound for any uploaded file.
const MaxUploadSize = 5 << 20 // 5 MB

// Upload kinds and the bucket prefixes they land under.
const (
	KindImage = "image"
	KindPDF   = "pdf"
)

// CheckUpload validates an upload before any bytes reach object storage.
// Images accept any image/* content type; KindPDF accepts only
// application/pdf. The same checks run here regardless of what a client
// claims to have validated.
func CheckUpload(kind, contentType string, size int64) error {
	switch kind {
	case KindImage:
		if !strings.HasPrefix(contentType, "image/") {
			return errs.NewUnsupportedMediaTypeError(contentType, []string{"image/*"})
		}
	case KindPDF:
		if contentType != "application/pdf" {
			return errs.NewUnsupportedMediaTypeError(contentType, []string{"application/pdf"})
		}
	default:
		return errs.NewInvalidFieldError("type", "must be \"image\" or \"pdf\"")
	}

	if size > MaxUploadSize {
		return errs.NewMaxBodySizeExceededError(MaxUploadSize)
	}
	return nil
}

// PathPrefix returns the bucket folder for a validated upload kind.
func PathPrefix(kind string) string {
	if kind == KindPDF {
		return "documents"
	}
	return "avatars"
}
