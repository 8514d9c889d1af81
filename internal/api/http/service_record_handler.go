package http

import (
	"net/http"

	"servicelog-backend/internal/service"
)

type ServiceRecordHandler struct {
	svc service.ServiceRecordService
}

func NewServiceRecordHandler(svc service.ServiceRecordService) *ServiceRecordHandler {
	return &ServiceRecordHandler{svc: svc}
}

// Record handles POST /api/v1/vehicles/{id}/services.
func (h *ServiceRecordHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, vehicleID, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req serviceRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.svc.RecordService(r.Context(), userID, vehicleID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toServiceRecordResponse(rec))
}

// ListByVehicle handles GET /api/v1/vehicles/{id}/services.
func (h *ServiceRecordHandler) ListByVehicle(w http.ResponseWriter, r *http.Request) {
	userID, vehicleID, ok := requestScope(w, r)
	if !ok {
		return
	}
	records, err := h.svc.ListServiceRecords(r.Context(), userID, vehicleID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]serviceRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, toServiceRecordResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ServiceRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.GetServiceRecord(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toServiceRecordResponse(rec))
}

func (h *ServiceRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req serviceRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.svc.UpdateServiceRecord(r.Context(), userID, id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toServiceRecordResponse(rec))
}

func (h *ServiceRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteServiceRecord(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
