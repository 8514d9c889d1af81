package http

import (
	"net/http"

	"servicelog-backend/internal/service"
)

type ReminderHandler struct {
	svc service.ReminderService
}

func NewReminderHandler(svc service.ReminderService) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	views, summary, err := h.svc.ListOpenReminders(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reminderListResponse{Reminders: toReminderResponses(views), Summary: &summary})
}

func (h *ReminderHandler) ListByVehicle(w http.ResponseWriter, r *http.Request) {
	userID, vehicleID, ok := requestScope(w, r)
	if !ok {
		return
	}
	views, err := h.svc.ListVehicleReminders(r.Context(), userID, vehicleID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reminderListResponse{Reminders: toReminderResponses(views)})
}

func (h *ReminderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	if err := h.svc.MarkReminderComplete(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReminderHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	if err := h.svc.DismissReminder(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
