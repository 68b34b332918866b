package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/db"
	"github.com/sidereusnuntius/gosocial/internal/dispatch"
	"github.com/sidereusnuntius/gosocial/internal/domain"
	"github.com/sidereusnuntius/gosocial/internal/service"
)

// MaxBody bounds request bodies; data URI images make posts large.
const MaxBody = 8 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// payloadFunc builds a command payload from the request.
type payloadFunc func(r *http.Request) (json.RawMessage, error)

func noPayload(*http.Request) (json.RawMessage, error) {
	return nil, nil
}

func bodyPayload(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, MaxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %s", service.ErrInvalidInput, err)
	}
	return body, nil
}

func refPayload(r *http.Request) (json.RawMessage, error) {
	return json.Marshal(dispatch.PostRef{ID: chi.URLParam(r, "id")})
}

func reactPayload(r *http.Request) (json.RawMessage, error) {
	return json.Marshal(dispatch.ReactPayload{
		ID:   chi.URLParam(r, "id"),
		Kind: domain.Reaction(chi.URLParam(r, "kind")),
	})
}

// postPayload takes the content and image from the body and the id from the path.
func postPayload(r *http.Request) (json.RawMessage, error) {
	body, err := bodyPayload(r)
	if err != nil {
		return nil, err
	}

	var p dispatch.PostPayload
	if len(body) > 0 {
		if err = json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("%w: malformed body: %s", service.ErrInvalidInput, err)
		}
	}
	p.ID = chi.URLParam(r, "id")
	return json.Marshal(p)
}

// Command dispatches a fixed command whose payload is built from the request.
func Command(h *Handler, name string, payload payloadFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := payload(r)
		if err != nil {
			writeError(w, err)
			return
		}
		h.dispatch(w, r, dispatch.Command{Name: name, Payload: raw})
	}
}

// RunCommand accepts any command as {"name": ..., "payload": ...}.
func RunCommand(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd dispatch.Command
		err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBody)).Decode(&cmd)
		if err != nil {
			writeError(w, fmt.Errorf("%w: malformed command: %s", service.ErrInvalidInput, err))
			return
		}
		h.dispatch(w, r, cmd)
	}
}

func GetFeed(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		raw, _ := json.Marshal(dispatch.QueryPayload{
			Search: q.Get("q"),
			Sort:   q.Get("sort"),
		})
		h.dispatch(w, r, dispatch.Command{Name: dispatch.Query, Payload: raw})
	}
}

func GetState(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.dispatcher.View(r.Context()))
	}
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request, cmd dispatch.Command) {
	view, err := h.dispatcher.Dispatch(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := GetCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Msg("internal error")
		msg = "internal error"
	}
	writeJSON(w, code, errorResponse{Error: msg})
}

func GetCode(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrConflict), errors.Is(err, db.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
