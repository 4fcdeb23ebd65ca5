package handler

import (
	stdErrors "errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/summaro/errors"
	"github.com/johnquangdev/summaro/internal/adapter/presenter"
	"github.com/johnquangdev/summaro/internal/usecase/audio"
	ucerrors "github.com/johnquangdev/summaro/internal/usecase/errors"
)

// AudioHandler serves uploads and the stored file listing
type AudioHandler struct {
	svc    *audio.Service
	logger *zap.Logger
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(svc *audio.Service, logger *zap.Logger) *AudioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AudioHandler{svc: svc, logger: logger}
}

// ListFiles lists stored uploads
// @Summary      List uploaded files
// @Description  Lists audio files currently held in the upload directory, newest first
// @Tags         Files
// @Produce      json
// @Success      200  {object}  audio.FileListResponse
// @Failure      500  {object}  map[string]interface{}  "Failed to read files"
// @Router       /api/files [get]
func (h *AudioHandler) ListFiles(c echo.Context) error {
	files, err := h.svc.ListFiles()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list files", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToFileListResponse(files))
}

// UploadAudio stores an audio file and returns its transcript and digest
// @Summary      Upload and process audio
// @Description  Transcribes the uploaded audio, then builds an extractive summary and action items. Falls back to a fixed payload when the provider fails.
// @Tags         Audio
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio  formData  file  true  "Audio file (.mp3, .wav, .m4a, .ogg, .flac, .webm)"
// @Success      200    {object}  audio.UploadResponse
// @Failure      400    {object}  map[string]interface{}  "Missing, unsupported or oversized file"
// @Failure      500    {object}  map[string]interface{}  "Failed to store file"
// @Router       /api/upload-audio [post]
func (h *AudioHandler) UploadAudio(c echo.Context) error {
	fh, err := c.FormFile("audio")
	if err != nil {
		if stdErrors.Is(err, http.ErrMissingFile) {
			return HandleError(h.logger, c, errors.ErrMissingFile())
		}
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	// Reject before opening so nothing reaches the disk or the provider.
	if err := h.svc.Validate(fh.Filename, fh.Size); err != nil {
		return HandleError(h.logger, c, h.uploadError(fh.Filename, err))
	}

	src, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStoreFailed(err))
	}
	defer src.Close()

	res, err := h.svc.Process(c.Request().Context(), audio.Upload{
		FileName: fh.Filename,
		Size:     fh.Size,
		Body:     src,
	})
	if err != nil {
		return HandleError(h.logger, c, h.uploadError(fh.Filename, err))
	}
	return HandleSuccess(h.logger, c, presenter.ToUploadResponse(res))
}

func (h *AudioHandler) uploadError(name string, err error) error {
	switch {
	case stdErrors.Is(err, ucerrors.ErrMissingFile):
		return errors.ErrMissingFile()
	case stdErrors.Is(err, ucerrors.ErrUnsupportedFormat):
		return errors.ErrUnsupportedFileType(strings.ToLower(filepath.Ext(name)), h.svc.AllowedExtensions())
	case stdErrors.Is(err, ucerrors.ErrFileTooLarge):
		return errors.ErrFileTooLarge(int(h.svc.MaxBytes() >> 20))
	case stdErrors.Is(err, ucerrors.ErrEmptyFile):
		return errors.ErrInvalidArgument("Uploaded file is empty")
	default:
		return errors.ErrStoreFailed(err)
	}
}
