// Package api exposes HTTP handlers for the activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"example.com/mergington/internal/domain"
	"example.com/mergington/internal/web/static"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux. Path parameters arrive
// URL-decoded, so activity names with spaces work encoded or not.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /activities", h.listActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.signup)
	mux.HandleFunc("DELETE /activities/{name}/participants/{email}", h.removeParticipant)
	mux.HandleFunc("GET /{$}", redirectToUI)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
	mux.HandleFunc("GET /healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// redirectToUI sends browsers hitting the root to the embedded web UI.
func redirectToUI(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make(map[string]ActivityView, len(activities))
	for name, act := range activities {
		views[name] = toActivityView(act)
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	if err := h.service.Signup(r.Context(), name, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "Activity not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadySignedUp) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is already signed up for %s", email, name))
			return
		}
		if errors.Is(err, domain.ErrEmailRequired) {
			writeError(w, http.StatusBadRequest, "email is required")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) removeParticipant(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.PathValue("email")

	if err := h.service.Remove(r.Context(), name, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "Activity not found")
			return
		}
		if errors.Is(err, domain.ErrParticipantNotFound) {
			writeError(w, http.StatusNotFound, "Participant not found")
			return
		}
		if errors.Is(err, domain.ErrEmailRequired) {
			writeError(w, http.StatusBadRequest, "email is required")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Removed %s from %s", email, name),
	})
}

// ActivityView describes one activity in list responses.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse carries the human-readable result of a roster change.
type MessageResponse struct {
	Message string `json:"message"`
}

func toActivityView(act domain.Activity) ActivityView {
	participants := act.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     act.Description,
		Schedule:        act.Schedule,
		MaxParticipants: act.MaxParticipants,
		Participants:    participants,
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
