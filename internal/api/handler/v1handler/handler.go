// Package v1handler implements the version 1 HTTP API of the appraisal
// service.
package v1handler

import (
	"appraiser/internal/appraiser"
	"appraiser/internal/render"
	"appraiser/pkg/logger"
	"appraiser/pkg/serrors"
	"context"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers depend on.
type Deps struct {
	Appraiser appraiser.Appraiser
}

// Handler serves the /v1 API routes.
type Handler struct {
	deps Deps
	mux  *http.ServeMux
}

// Ensure Handler implements http.Handler.
var _ http.Handler = (*Handler)(nil)

// New creates a Handler and registers its routes.
func New(deps Deps) *Handler {
	h := &Handler{deps: deps, mux: http.NewServeMux()}

	h.mux.HandleFunc("GET /v1/appraisals/{domain}", h.GetAppraisal)
	h.mux.HandleFunc("GET /v1/appraisals/{domain}/trend", h.GetTrend)
	h.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		h.NewError(r.Context(), w, serrors.With(serrors.ErrNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})

	return h
}

// ServeHTTP dispatches to the registered v1 routes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// GetAppraisal appraises the domain in the path and returns the full result.
func (h *Handler) GetAppraisal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.deps.Appraiser.Appraise(ctx, r.PathValue("domain"))
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) { render.EncodeAppraisal(e, res) })
}

// GetTrend returns the search-interest series of the domain in the path.
func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	series, err := h.deps.Appraiser.Trend(ctx, r.PathValue("domain"))
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) { render.EncodeTrend(e, series) })
}

// NewError writes err as an Error response with the status of its kind.
// Messages of unclassified errors are not exposed.
func (h *Handler) NewError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code := StatusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		msg = "internal error"
	} else {
		logger.Warn(ctx, "request rejected", zap.Int("status", status), zap.Error(err))
	}

	writeJSON(ctx, w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Str(code)
		e.FieldStart("message")
		e.Str(msg)
		e.ObjEnd()
	})
}

// StatusFromError maps the semantic kind of err to an HTTP status and an
// error code.
func StatusFromError(err error) (int, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, serrors.ErrTimeout.Error()
	}

	k := serrors.KindOf(err)
	switch k {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest, k.Error()
	case serrors.ErrNotFound:
		return http.StatusNotFound, k.Error()
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests, k.Error()
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable, k.Error()
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout, k.Error()
	case serrors.ErrUnauthorized, serrors.ErrMalformed:
		// an upstream rejected our key or sent garbage
		return http.StatusBadGateway, k.Error()
	default:
		return http.StatusInternalServerError, serrors.ErrInternal.Error()
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}
