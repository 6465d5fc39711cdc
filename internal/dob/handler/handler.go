package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agegate/internal/dob/service"
	"agegate/pkg/platform/httputil"
	request "agegate/pkg/platform/middleware/request"
)

// Service defines the date-of-birth operations the HTTP layer needs.
// Returns domain values, not HTTP response DTOs.
type Service interface {
	YearsRange(ctx context.Context) service.YearsRange
	ValidateField(ctx context.Context, field service.Field, raw string) (bool, error)
	ValidateDateOfBirth(ctx context.Context, in service.BirthDateInput) service.Result
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/dob/years", h.HandleYears)
	r.Post("/dob/fields/{field}", h.HandleValidateField)
	r.Post("/dob/validate", h.HandleValidate)
}

// HandleYears returns the birth years a form should offer.
func (h *Handler) HandleYears(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toYearsResponse(h.service.YearsRange(r.Context())))
}

// HandleValidateField checks one component as the user types it.
func (h *Handler) HandleValidateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	field, err := service.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[FieldRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	valid, err := h.service.ValidateField(ctx, field, req.Value.String())
	if err != nil {
		h.logger.ErrorContext(ctx, "validate field failed", "error", err, "request_id", requestID, "field", field)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &FieldResponse{Field: string(field), Valid: valid})
}

// HandleValidate checks a full date of birth against the age window. An
// ineligible date is a normal 200 answer, not an error.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res := h.service.ValidateDateOfBirth(ctx, service.BirthDateInput{
		Day:   req.Day.String(),
		Month: req.Month.String(),
		Year:  req.Year.String(),
	})
	httputil.WriteJSON(w, http.StatusOK, toValidateResponse(res))
}
