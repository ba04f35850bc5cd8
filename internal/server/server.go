// Package server implements the companion validation backend: the email feed
// plus the round-trip validation endpoints the triage client calls before
// writing anything into the local store.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mailswipe/mailswipe/internal/backend"
)

// New returns the backend router.
func New() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(corsMiddleware)

	r.Get("/test-emails", handleTestEmails)
	r.Get("/emails", handleEmails)
	r.Post("/calendar/event", handleCalendarEvent)
	r.Post("/reminders/todo", handleReminder)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func handleTestEmails(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, testEmails)
}

// The live feed needs a mail provider (OAuth device flow against a mail API);
// nothing is wired here, so be explicit instead of returning an empty list.
func handleEmails(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "no mail provider configured; use /test-emails", http.StatusNotImplemented)
}

// parseISO accepts the ISO 8601 spellings clients send: RFC 3339 with or
// without fractional seconds, and naive local timestamps without a zone.
func parseISO(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func handleCalendarEvent(w http.ResponseWriter, r *http.Request) {
	var req backend.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	start, err := parseISO(req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusOK, backend.EventResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid date format: %v", err),
		})
		return
	}
	end, err := parseISO(req.EndDate)
	if err != nil {
		writeJSON(w, http.StatusOK, backend.EventResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid date format: %v", err),
		})
		return
	}

	if !end.After(start) {
		writeJSON(w, http.StatusOK, backend.EventResponse{
			Success: false,
			Message: "End date must be after start date",
		})
		return
	}

	writeJSON(w, http.StatusOK, backend.EventResponse{
		Success: true,
		Message: "Event validated successfully. Ready to add to calendar.",
		EventData: map[string]any{
			"title":        req.Title,
			"location":     req.Location,
			"start_date":   req.StartDate,
			"end_date":     req.EndDate,
			"notes":        req.Notes,
			"all_day":      req.AllDay,
			"validated_at": time.Now().Format(time.RFC3339),
		},
	})
}

func handleReminder(w http.ResponseWriter, r *http.Request) {
	var req backend.ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.DueDate != "" {
		if _, err := parseISO(req.DueDate); err != nil {
			writeJSON(w, http.StatusOK, backend.ReminderResponse{
				Success: false,
				Message: fmt.Sprintf("Invalid date format: %v", err),
			})
			return
		}
	}

	if req.Priority < 0 || req.Priority > 9 {
		writeJSON(w, http.StatusOK, backend.ReminderResponse{
			Success: false,
			Message: "Priority must be between 0 and 9",
		})
		return
	}

	writeJSON(w, http.StatusOK, backend.ReminderResponse{
		Success: true,
		Message: "Reminder validated successfully. Ready to add to reminders.",
		ReminderData: map[string]any{
			"title":        req.Title,
			"notes":        req.Notes,
			"due_date":     req.DueDate,
			"priority":     req.Priority,
			"validated_at": time.Now().Format(time.RFC3339),
		},
	})
}
