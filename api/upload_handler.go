package api

import (
	"net/http"
	"path/filepath"

	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  *storage.Uploader
}

func newUploadHandler(uploader *storage.Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// UploadResult carries the public URL of a stored file
type UploadResult struct {
	URL string `json:"url"`
}

// upload stores an avatar image or resume PDF in object storage
// @Summary Upload file
// @Description Validates type and size server-side and stores the file, returning its public URL. Images land under avatars/, PDFs under documents/
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param type query string true "Upload kind: image or pdf"
// @Param file formData file true "File to upload, 5 MB max"
// @Success 201 {object} UploadResult "Public URL of the stored file"
// @Failure 413 {object} ErrorResponse "Request Entity Too Large - File over 5 MB"
// @Failure 415 {object} ErrorResponse "Unsupported Media Type - Wrong content type"
// @Router /admin/upload [post]
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewServiceUnavailableError("object storage is not configured"))
			return
		}

		kind := r.URL.Query().Get("type")

		// Cap the whole request body; multipart framing needs a little headroom
		r.Body = http.MaxBytesReader(w, r.Body, storage.MaxUploadSize+1<<20)
		if err := r.ParseMultipartForm(storage.MaxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(storage.MaxUploadSize))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if err := storage.CheckUpload(kind, contentType, header.Size); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		path := storage.PathPrefix(kind) + "/" + uuid.NewString() + filepath.Ext(header.Filename)

		url, err := h.uploader.Upload(r.Context(), path, file, contentType)
		if err != nil {
			h.logger.Error().Err(err).Str("path", path).Msg("upload failed")
			h.responder.WriteError(w, errs.NewInternalError("failed to store file"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, UploadResult{URL: url})
	}
}
