package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/service"
	"creditguard/pkg/platform/httputil"
	"creditguard/pkg/platform/sentinel"
	"creditguard/pkg/requestcontext"
)

// MaxPayloadBytes bounds a raw bureau payload.
const MaxPayloadBytes = 4 << 20

// Service defines the interface for credit report operations.
type Service interface {
	Normalize(ctx context.Context, req service.NormalizeRequest) (*service.Result, error)
	NormalizeAll(ctx context.Context, userID string, raw []byte) ([]service.Result, error)
	Latest(ctx context.Context, userID, bureauCode string) (*models.CreditProfile, error)
	Profiles(ctx context.Context, userID string) ([]models.CreditProfile, error)
}

// Handler serves the credit report endpoints.
type Handler struct {
	logger  *slog.Logger
	reports Service
}

// New creates a new credit report Handler.
func New(reports Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, reports: reports}
}

// Register registers the credit report routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1/users/{userID}/profiles", func(r chi.Router) {
		r.Post("/normalize", h.handleNormalize)
		r.Post("/normalize-all", h.handleNormalizeAll)
		r.Get("/", h.handleListProfiles)
		r.Get("/{bureau}", h.handleGetProfile)
	})
}

func (h *Handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	body, ok := h.readPayload(w, r)
	if !ok {
		return
	}

	strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))
	res, err := h.reports.Normalize(ctx, service.NormalizeRequest{
		UserID:  chi.URLParam(r, "userID"),
		Bureau:  r.URL.Query().Get("bureau"),
		Payload: body,
		Strict:  strict,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toResultResponse(res))
}

func (h *Handler) handleNormalizeAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	body, ok := h.readPayload(w, r)
	if !ok {
		return
	}

	results, err := h.reports.NormalizeAll(ctx, chi.URLParam(r, "userID"), body)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	resp := make([]resultResponse, 0, len(results))
	for i := range results {
		resp = append(resp, toResultResponse(&results[i]))
	}
	httputil.WriteJSON(w, http.StatusOK, listResultsResponse{Results: resp})
}

func (h *Handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profiles, err := h.reports.Profiles(ctx, chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if profiles == nil {
		profiles = []models.CreditProfile{}
	}
	httputil.WriteJSON(w, http.StatusOK, listProfilesResponse{Profiles: profiles})
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := h.reports.Latest(ctx, chi.URLParam(r, "userID"), chi.URLParam(r, "bureau"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) readPayload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxPayloadBytes))
	if err != nil {
		h.logger.WarnContext(r.Context(), "failed to read credit report payload",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, http.StatusBadRequest, httputil.CodeBadRequest, "request body too large or unreadable")
		return nil, false
	}
	return body, true
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	requestID := requestcontext.RequestID(ctx)
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidPayload),
		errors.Is(err, service.ErrUnknownBureau):
		h.logger.WarnContext(ctx, "rejected credit report request", "request_id", requestID, "error", err.Error())
		httputil.WriteError(w, http.StatusBadRequest, httputil.CodeBadRequest, err.Error())
	case errors.Is(err, service.ErrBureauUnavailable):
		httputil.WriteError(w, http.StatusUnprocessableEntity, httputil.CodeUnavailable, err.Error())
	case errors.Is(err, sentinel.ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, httputil.CodeNotFound, "no profile stored for bureau")
	default:
		h.logger.ErrorContext(ctx, "credit report request failed", "request_id", requestID, "error", err.Error())
		httputil.WriteError(w, http.StatusInternalServerError, httputil.CodeInternal, err.Error())
	}
}
