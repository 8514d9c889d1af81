package http

import (
	"net/http"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/security"

	"github.com/gorilla/mux"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Vehicles       *VehicleHandler
	ServiceRecords *ServiceRecordHandler
	Reminders      *ReminderHandler
	Documents      *DocumentHandler
	Stats          *StatsHandler
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// NewRouter wires the JSON API. Extra middleware (metrics) runs before auth.
func NewRouter(h Handlers, tm security.TokenManager, middleware ...mux.MiddlewareFunc) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger)
	for _, mw := range middleware {
		router.Use(mw)
	}
	router.Use(NewAuthMiddleware(tm).Handler)

	router.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	if h.Metrics != nil {
		router.Handle("/metrics", h.Metrics).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/kinds", listKinds).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", h.Stats.Dashboard).Methods(http.MethodGet)

	api.HandleFunc("/vehicles", h.Vehicles.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", h.Vehicles.Create).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}", h.Vehicles.Get).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", h.Vehicles.Update).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id}", h.Vehicles.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/vehicles/{id}/mileage", h.Vehicles.UpdateMileage).Methods(http.MethodPatch)
	api.HandleFunc("/vehicles/{id}/services", h.ServiceRecords.ListByVehicle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}/services", h.ServiceRecords.Record).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}/reminders", h.Reminders.ListByVehicle).Methods(http.MethodGet)

	api.HandleFunc("/services/{id}", h.ServiceRecords.Get).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", h.ServiceRecords.Update).Methods(http.MethodPut)
	api.HandleFunc("/services/{id}", h.ServiceRecords.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/reminders", h.Reminders.List).Methods(http.MethodGet)
	api.HandleFunc("/reminders/{id}/complete", h.Reminders.Complete).Methods(http.MethodPost)
	api.HandleFunc("/reminders/{id}", h.Reminders.Dismiss).Methods(http.MethodDelete)

	api.HandleFunc("/documents", h.Documents.Upload).Methods(http.MethodPost)
	api.HandleFunc("/documents", h.Documents.Download).Methods(http.MethodGet)

	return router
}

func healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func listKinds(w http.ResponseWriter, r *http.Request) {
	var resp kindsResponse
	for _, k := range domain.ServiceKinds() {
		resp.ServiceKinds = append(resp.ServiceKinds, kindResponse{Value: string(k), Label: k.Label()})
	}
	for _, k := range domain.ReminderKinds() {
		resp.ReminderKinds = append(resp.ReminderKinds, kindResponse{Value: string(k), Label: k.Label()})
	}
	writeJSON(w, http.StatusOK, resp)
}
