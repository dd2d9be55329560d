package reportshandler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rms/internal/auth"
	"rms/internal/domain/reports"
	"rms/internal/transport/http/api"
	"rms/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/usage/{employeeID}/pdf", h.handleUsagePDF)
		r.Get("/calendar/export", h.handleCalendarExport)
	})
}

func (h *Handler) handleUsagePDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID != user.UserID && !auth.CanApprove(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot export another employee's statement", reqID)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = employeeID
	}

	pdf, err := h.Service.UsagePDF(r.Context(), employeeID, name)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to generate usage statement", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=usage-%s.pdf", employeeID))
	_, _ = w.Write(pdf)
}

func (h *Handler) handleCalendarExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	data, err := h.Service.CalendarCSV(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export calendar", reqID)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=leave-calendar.csv")
	_, _ = w.Write(data)
}
