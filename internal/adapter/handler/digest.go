package handler

import (
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/summaro/errors"
	"github.com/johnquangdev/summaro/internal/adapter/dto/common"
	digestdto "github.com/johnquangdev/summaro/internal/adapter/dto/digest"
	"github.com/johnquangdev/summaro/internal/adapter/presenter"
	"github.com/johnquangdev/summaro/internal/usecase/audio"
	"github.com/johnquangdev/summaro/internal/usecase/digest"
	ucerrors "github.com/johnquangdev/summaro/internal/usecase/errors"
)

const defaultPageSize = 20

// DigestHandler runs the engine on supplied text and serves history
type DigestHandler struct {
	svc    *audio.Service
	logger *zap.Logger
}

// NewDigestHandler creates a new digest handler
func NewDigestHandler(svc *audio.Service, logger *zap.Logger) *DigestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DigestHandler{svc: svc, logger: logger}
}

// CreateDigest summarizes a transcript the caller already has
// @Summary      Digest a transcript
// @Description  Builds an extractive summary, action items and per-sentence breakdown from a transcript and/or provider summary
// @Tags         Digest
// @Accept       json
// @Produce      json
// @Param        request  body      digest.DigestRequest  true  "Transcript and provider summary"
// @Success      200      {object}  digest.DigestResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Router       /v1/digest [post]
func (h *DigestHandler) CreateDigest(c echo.Context) error {
	var req digestdto.DigestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	d, err := h.svc.Digest(digest.Input{
		Transcript:          req.Transcript,
		ProviderSummary:     req.ProviderSummary,
		TargetSentenceCount: req.TargetSentenceCount,
		Participants:        req.Participants,
	})
	if stdErrors.Is(err, ucerrors.ErrEmptyInput) {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("transcript or provider_summary is required"))
	}
	if err != nil {
		return HandleError(h.logger, c, errors.ErrProcessingFailed(err))
	}
	return HandleSuccess(h.logger, c, presenter.ToDigestResponse(d))
}

// ListDigests lists processed uploads
// @Summary      List digest history
// @Tags         Digest
// @Produce      json
// @Param        page       query     int     false  "Page number"  default(1)
// @Param        page_size  query     int     false  "Page size"    default(20)
// @Param        search     query     string  false  "Matches file name or summary"
// @Success      200        {object}  common.ListResponse
// @Failure      501        {object}  map[string]interface{}  "History disabled"
// @Router       /v1/digests [get]
func (h *DigestHandler) ListDigests(c echo.Context) error {
	var req digestdto.ListDigestsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}

	records, total, err := h.svc.ListDigests(c.Request().Context(), req.Page, req.PageSize, req.Search)
	if err != nil {
		return HandleError(h.logger, c, historyError(err))
	}

	items := make([]*digestdto.DigestRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, presenter.ToDigestRecordResponse(r, false))
	}
	return HandleSuccess(h.logger, c, common.ListResponse{
		Data:       items,
		Pagination: common.NewPagination(req.Page, req.PageSize, total),
	})
}

// GetDigest returns one processed upload
// @Summary      Get digest
// @Tags         Digest
// @Produce      json
// @Param        id   path      string  true  "Digest ID (UUID)"
// @Success      200  {object}  digest.DigestRecordResponse
// @Failure      400  {object}  map[string]interface{}  "Invalid ID"
// @Failure      404  {object}  map[string]interface{}  "Not found"
// @Router       /v1/digests/{id} [get]
func (h *DigestHandler) GetDigest(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid digest id"))
	}
	rec, err := h.svc.GetDigest(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, historyError(err))
	}
	return HandleSuccess(h.logger, c, presenter.ToDigestRecordResponse(rec, true))
}

func historyError(err error) error {
	switch {
	case stdErrors.Is(err, ucerrors.ErrHistoryDisabled):
		return errors.ErrNotImplemented("Digest history")
	case stdErrors.Is(err, ucerrors.ErrDigestNotFound):
		return errors.ErrNotFound("Digest")
	case stdErrors.Is(err, ucerrors.ErrInvalidPageRange):
		return errors.ErrInvalidArgument("page must be >= 1 and page_size between 1 and 100")
	default:
		return errors.ErrDBQueryFailed("digest history", err)
	}
}
