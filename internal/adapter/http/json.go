package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// readJSON parses the request body into data. Unknown fields and bodies
// over 1MB are rejected.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(data)
}

type errorEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSONError(w http.ResponseWriter, status int, message string, fields map[string]string) error {
	return writeJSON(w, status, &errorEnvelope{
		Message: message,
		Status:  status,
		Fields:  fields,
	})
}

func (h *Handler) write(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	if err := writeJSONError(w, http.StatusBadRequest, message, nil); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// fail renders a use case error with the status its kind maps to.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		status = http.StatusInternalServerError
		msg    = "internal error"
		fields map[string]string
		verr   *port.ValidationError
	)
	switch {
	case errors.As(err, &verr):
		status, msg, fields = http.StatusBadRequest, "invalid request", verr.Fields
	case errors.Is(err, port.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, port.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, port.ErrDuplicateDomain):
		status, msg = http.StatusConflict, "domain already registered"
	case errors.Is(err, port.ErrStoreUnavailable):
		status, msg = http.StatusServiceUnavailable, "service unavailable"
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	if werr := writeJSONError(w, status, msg, fields); werr != nil {
		h.logger.Error("encode response error", slog.Any("error", werr))
	}
}

// viewer collects what the engine needs to identify the person behind a
// request. RealIP has already replaced RemoteAddr when a proxy header
// was present.
func viewer(r *http.Request, wallet string) domain.Viewer {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return domain.Viewer{
		Wallet:    wallet,
		IPAddress: ip,
		UserAgent: r.UserAgent(),
	}
}
