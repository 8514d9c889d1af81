package http

import (
	"net/http"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/service"
)

type VehicleHandler struct {
	svc service.VehicleService
}

func NewVehicleHandler(svc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	vehicles, err := h.svc.ListVehicles(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req vehicleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.svc.AddVehicle(r.Context(), userID, req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	v, err := h.svc.GetVehicle(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req vehicleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.svc.UpdateVehicle(r.Context(), userID, id, req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) UpdateMileage(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req mileageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.CurrentMileage == nil {
		writeError(w, r, domain.NewValidationError("current_mileage", "current mileage is required"))
		return
	}
	v, err := h.svc.UpdateMileage(r.Context(), userID, id, *req.CurrentMileage)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteVehicle(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
