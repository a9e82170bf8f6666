package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/logging"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// errorStatuses is matched in order; the first sentinel found in the chain wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{domain.ErrDependencyUnavailable, http.StatusServiceUnavailable},
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrTokenRevoked, http.StatusUnauthorized},
	{domain.ErrTokenExpired, http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusForbidden},
	{domain.ErrIdentityNotFound, http.StatusNotFound},
	{domain.ErrAlreadyExpired, http.StatusBadRequest},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrValidation, http.StatusUnprocessableEntity},
	{domain.ErrUserAlreadyExists, http.StatusConflict},
	{domain.ErrInvalidIngredients, http.StatusBadRequest},
	{domain.ErrAlreadySaved, http.StatusBadRequest},
	{domain.ErrNotSaved, http.StatusBadRequest},
}

// statusFor maps an error to its HTTP status and the detail shown to the client.
func statusFor(err error) (int, string) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.target) {
			continue
		}
		if e.target == domain.ErrValidation {
			return e.status, err.Error()
		}
		return e.status, e.target.Error()
	}
	return http.StatusInternalServerError, domain.ErrInternal.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeJSON(w, status, detailResponse{Detail: detail})
}

func writeError(ctx context.Context, w http.ResponseWriter, logger logging.Logger, err error) {
	status, detail := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", "status", status, "error", err)
	}
	writeDetail(w, status, detail)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return validationError("invalid request body")
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validationError(name + ": must be a positive integer")
	}
	return id, nil
}

func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, validationError("page: must be greater than or equal to 1")
	}
	return page, nil
}

func boolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, validationError(name + ": must be a boolean")
	}
	return v, nil
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
}
