package bookinghandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"rms/internal/auth"
	"rms/internal/domain/booking"
	"rms/internal/domain/interval"
	"rms/internal/transport/http/api"
	"rms/internal/transport/http/middleware"
	"rms/internal/transport/http/shared"
)

type Handler struct {
	Service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Get("/types", h.handleListTypes)
		r.Get("/requests", h.handleListRequests)
		r.Post("/requests", h.handleCreateRequest)
		r.Get("/requests/{requestID}", h.handleGetRequest)
		r.Put("/requests/{requestID}", h.handleUpdateRequest)
		r.With(middleware.RequireApprover).Post("/requests/{requestID}/approve", h.handleApproveRequest)
		r.With(middleware.RequireApprover).Post("/requests/{requestID}/reject", h.handleRejectRequest)
		r.Post("/requests/{requestID}/cancel", h.handleCancelRequest)
		r.Get("/calendar", h.handleCalendar)
		r.Get("/picker/disabled-days", h.handleDisabledDays)
		r.Get("/usage", h.handleUsage)
	})
}

// failDomain translates service errors into the response envelope. Range and
// calendar errors are always surfaced; they are never coerced to defaults.
func failDomain(w http.ResponseWriter, err error, reqID string) {
	var unavailable *interval.CalendarUnavailableError
	switch {
	case errors.Is(err, interval.ErrInvalidRange):
		api.Fail(w, http.StatusBadRequest, "invalid_range", "end date precedes start date", reqID)
	case errors.As(err, &unavailable):
		api.Fail(w, http.StatusServiceUnavailable, "calendar_unavailable", unavailable.Error(), reqID)
	case errors.Is(err, booking.ErrConflict):
		api.Fail(w, http.StatusConflict, "booking_conflict", "an overlapping leave request already exists", reqID)
	case errors.Is(err, booking.ErrUnknownEmployee):
		api.Fail(w, http.StatusBadRequest, "unknown_employee", "employee does not exist", reqID)
	case errors.Is(err, booking.ErrUnknownLeaveType):
		api.Fail(w, http.StatusBadRequest, "unknown_leave_type", "leave type does not exist", reqID)
	case errors.Is(err, booking.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", reqID)
	case errors.Is(err, booking.ErrInvalidState):
		api.Fail(w, http.StatusConflict, "invalid_state", "leave request is not in a state allowing this change", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "leave_request_failed", "leave request operation failed", reqID)
	}
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	types, err := h.Service.ListTypes(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_types_failed", "failed to list leave types", reqID)
		return
	}
	api.Success(w, types, reqID)
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	employeeID := r.URL.Query().Get("employeeId")
	// Employees only see their own requests.
	if !auth.CanApprove(user.Role) {
		employeeID = user.UserID
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	requests, total, err := h.Service.ListRequests(r.Context(), employeeID, limit, offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_requests_failed", "failed to list leave requests", reqID)
		return
	}
	api.Success(w, map[string]any{"requests": requests, "total": total}, reqID)
}

type requestPayload struct {
	EmployeeID  string `json:"employeeId"`
	LeaveTypeID string `json:"leaveTypeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Reason      string `json:"reason"`
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload requestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if payload.EmployeeID == "" || !auth.CanApprove(user.Role) {
		payload.EmployeeID = user.UserID
	}

	v := shared.NewValidator()
	v.Required("leaveTypeId", payload.LeaveTypeID, "leave type is required")
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if v.Reject(w, reqID) || !startOK || !endOK {
		return
	}

	created, err := h.Service.CreateRequest(r.Context(), payload.EmployeeID, payload.LeaveTypeID, payload.Reason, start, end)
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Created(w, created, reqID)
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	req, err := h.Service.GetRequest(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, req, reqID)
}

type updatePayload struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (h *Handler) handleUpdateRequest(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if v.Reject(w, reqID) || !startOK || !endOK {
		return
	}

	updated, err := h.Service.UpdateRequest(r.Context(), chi.URLParam(r, "requestID"), start, end)
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, updated, reqID)
}

func (h *Handler) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.Service.ApproveRequest)
}

func (h *Handler) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.Service.RejectRequest)
}

func (h *Handler) handleCancelRequest(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.Service.CancelRequest)
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, requestID string) (booking.Request, error)) {
	reqID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	req, err := fn(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, req, reqID)
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	entries, err := h.Service.CalendarEntries(r.Context())
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, entries, reqID)
}

func (h *Handler) handleDisabledDays(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" || !auth.CanApprove(user.Role) {
		employeeID = user.UserID
	}
	excludeID := r.URL.Query().Get("exclude")

	v := shared.NewValidator()
	from, fromOK := v.Date("from", r.URL.Query().Get("from"))
	to, toOK := v.Date("to", r.URL.Query().Get("to"))
	if v.Reject(w, reqID) || !fromOK || !toOK {
		return
	}

	days, err := h.Service.DisabledDays(r.Context(), employeeID, excludeID, from, to)
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

func (h *Handler) handleUsage(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	query := r.URL.Query()
	employeeID := query.Get("employeeId")
	if employeeID == "" || !auth.CanApprove(user.Role) {
		employeeID = user.UserID
	}

	// A draft range lets the form show live totals while the user adjusts
	// the picker; all three of type/start/end must be present to count.
	var candidate interval.Booking
	if query.Get("candidateType") != "" && query.Get("candidateStart") != "" && query.Get("candidateEnd") != "" {
		start, err := shared.ParseDate(query.Get("candidateStart"))
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid candidate start date", reqID)
			return
		}
		end, err := shared.ParseDate(query.Get("candidateEnd"))
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid candidate end date", reqID)
			return
		}
		rng, err := interval.NewDateRange(start, end)
		if err != nil {
			failDomain(w, err, reqID)
			return
		}
		candidate = interval.Booking{
			ID:       query.Get("exclude"),
			OwnerKey: employeeID,
			Category: query.Get("candidateType"),
			Range:    rng,
		}
	}

	usage, err := h.Service.Usage(r.Context(), employeeID, candidate)
	if err != nil {
		failDomain(w, err, reqID)
		return
	}
	api.Success(w, usage, reqID)
}
