package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckUpload(t *testing.T) {
	tests := []struct {
		name        string
		kind        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"png image", KindImage, "image/png", 1024, false},
		{"jpeg image", KindImage, "image/jpeg", MaxUploadSize, false},
		{"pdf", KindPDF, "application/pdf", 1024, false},
		{"pdf claimed as image", KindImage, "application/pdf", 1024, true},
		{"image claimed as pdf", KindPDF, "image/png", 1024, true},
		{"text file", KindImage, "text/plain", 1024, true},
		{"image over limit", KindImage, "image/png", MaxUploadSize + 1, true},
		{"pdf over limit", KindPDF, "application/pdf", MaxUploadSize + 1, true},
		{"unknown kind", "video", "video/mp4", 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckUpload(tt.kind, tt.contentType, tt.size)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPathPrefix(t *testing.T) {
	require.Equal(t, "avatars", PathPrefix(KindImage))
	require.Equal(t, "documents", PathPrefix(KindPDF))
}
