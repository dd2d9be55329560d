package fleethandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rms/internal/domain/fleet"
	"rms/internal/domain/interval"
	"rms/internal/transport/http/api"
	"rms/internal/transport/http/middleware"
	"rms/internal/transport/http/shared"
)

type Handler struct {
	Service *fleet.Service
}

func NewHandler(service *fleet.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/fleet", func(r chi.Router) {
		r.Get("/vehicles", h.handleListVehicles)
		r.Get("/vehicles/{vehicleID}/schedule", h.handleSchedule)
		r.Get("/vehicles/{vehicleID}/disabled-days", h.handleDisabledDays)
		r.Post("/reservations", h.handleCreateReservation)
		r.Get("/reservations/{reservationID}", h.handleGetReservation)
		r.Post("/reservations/{reservationID}/cancel", h.handleCancelReservation)
	})
}

func failDomain(w http.ResponseWriter, err error, reqID string) {
	var unavailable *interval.CalendarUnavailableError
	switch {
	case errors.Is(err, interval.ErrInvalidRange):
		api.Fail(w, http.StatusBadRequest, "invalid_range", "end date precedes start date", reqID)
	case errors.As(err, &unavailable):
		api.Fail(w, http.StatusServiceUnavailable, "calendar_unavailable", unavailable.Error(), reqID)
	case errors.Is(err, fleet.ErrConflict):
		api.Fail(w, http.StatusConflict, "reservation_conflict", "vehicle is already reserved for that range", reqID)
	case errors.Is(err, fleet.ErrUnknownVehicle):
		api.Fail(w, http.StatusBadRequest, "unknown_vehicle", "vehicle does not exist", reqID)
	case errors.Is(err, fleet.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "reservation not found", reqID)
	case errors.Is(err, fleet.ErrInvalidState):
		api.Fail(w, http.StatusConflict, "invalid_state", "reservation is not in a state allowing this change", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "reservation_failed", "reservation operation failed", reqID)
	}
}

func (h *Handler) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	vehicles, err := h.Service.ListVehicles(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "vehicles_failed", "failed to list vehicles", reqID)
		return
	}
	api.Success(w, vehicles, reqID)
}

type reservationPayload struct {
	VehicleID string `json:"vehicleId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Purpose   string `json:"purpose"`
}

func (h *Handler) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload reservationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("vehicleId", payload.VehicleID, "vehicle is required")
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if v.Reject(w, reqID) || !startOK || !endOK {
		return
	}

	created, err := h.Service.CreateReservation(r.Context(), payload.VehicleID, user.UserID, payload.Purpose, start, end)
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Created(w, created, reqID)
}

func (h *Handler) handleGetReservation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	res, err := h.Service.GetReservation(r.Context(), chi.URLParam(r, "reservationID"))
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, res, reqID)
}

func (h *Handler) handleCancelReservation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	res, err := h.Service.CancelReservation(r.Context(), chi.URLParam(r, "reservationID"))
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, res, reqID)
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	entries, err := h.Service.Schedule(r.Context(), chi.URLParam(r, "vehicleID"))
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, entries, reqID)
}

func (h *Handler) handleDisabledDays(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	from, fromOK := v.Date("from", r.URL.Query().Get("from"))
	to, toOK := v.Date("to", r.URL.Query().Get("to"))
	if v.Reject(w, reqID) || !fromOK || !toOK {
		return
	}

	days, err := h.Service.DisabledDays(r.Context(), chi.URLParam(r, "vehicleID"), from, to)
	if err != nil {
		failDomain(w, err, reqID)
		return
	}

	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.Format("2006-01-02"))
	}
	api.Success(w, out, reqID)
}
