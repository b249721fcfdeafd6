package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
)

const errInternalText = "Erreur interne du serveur"

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if err == nil {
		err = errors.New(http.StatusText(code))
	}

	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error()})
	if err != nil {
		slog.ErrorContext(ctx, "encode error response", "error", err)
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps a service error to its status code. msg is used for
// failures the caller cannot act on.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrValidationFailed), errors.Is(err, entity.ErrIncorrectRequestBody):
		SendErr(ctx, w, http.StatusBadRequest, err, "Données invalides")
	case errors.Is(err, entity.ErrUnauthorized):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Authentification requise")
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, "Accès refusé")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Ressource introuvable")
	case errors.Is(err, entity.ErrAlreadyExists):
		SendErr(ctx, w, http.StatusConflict, err, "La ressource existe déjà")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}

func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err)
	}

	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil || id.IsNil() {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", entity.ErrValidationFailed, chi.URLParam(r, "id"))
	}

	return id, nil
}

// parseListFilter reads the common listing parameters. Out of range page
// and limit values fall back to the defaults.
func parseListFilter(q url.Values) (entity.ListFilter, error) {
	filter := entity.ListFilter{
		Search:   q.Get("search"),
		Statut:   q.Get("statut"),
		Priorite: q.Get("priorite"),
		Type:     q.Get("type"),
	}

	if raw := q.Get("contactId"); raw != "" {
		id, err := uuid.FromString(raw)
		if err != nil {
			return entity.ListFilter{}, fmt.Errorf("%w: invalid contactId %q", entity.ErrValidationFailed, raw)
		}

		filter.ContactID = uuid.NullUUID{UUID: id, Valid: true}
	}

	page, err := strconv.ParseUint(q.Get("page"), 10, 64)
	if err == nil && page > 0 {
		filter.Page = page
	}

	limit, err := strconv.ParseUint(q.Get("limit"), 10, 64)
	if err == nil && limit > 0 {
		filter.Limit = limit
	}

	return filter, nil
}

// Date accepts either a calendar date (2006-01-02) or an RFC 3339
// timestamp.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string

	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	if s == "" {
		return nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q", s)
		}
	}

	d.Time = t

	return nil
}

func (d *Date) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}

	t := d.Time

	return &t
}
