package reminder

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/api/pkg/pagination"
	"github.com/healthtrack/api/pkg/validation"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/reminders", h.Create)
	g.GET("/reminders", h.List)
	g.POST("/ai-nurse/medication-reminders", h.MedicationReminders)
	g.POST("/ai-nurse/appointment-reminder", h.AppointmentReminder)
	g.POST("/ai-nurse/hydration", h.HydrationReminders)
}

func (h *Handler) Create(c echo.Context) error {
	var rem Reminder
	if err := c.Bind(&rem); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Create(c.Request().Context(), &rem)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id, "message": "Reminder created"})
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context(), c.QueryParam("patient_id"))
	if err != nil {
		return respondError(c, err)
	}
	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

func (h *Handler) MedicationReminders(c echo.Context) error {
	timesPerDay, err := intParam(c, "times_per_day", DefaultTimesPerDay)
	if err != nil {
		return validation.BadRequest(c, err)
	}
	days, err := intParam(c, "days", DefaultDays)
	if err != nil {
		return validation.BadRequest(c, err)
	}

	created, err := h.svc.GenerateMedicationSchedule(c.Request().Context(), c.QueryParam("patient_id"), timesPerDay, days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"created": created})
}

func (h *Handler) AppointmentReminder(c echo.Context) error {
	var when time.Time
	if raw := c.QueryParam("appointment_time"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return validation.BadRequest(c, validation.New("appointment_time", "must be an RFC 3339 timestamp").Err())
		}
		when = parsed
	}

	id, err := h.svc.ScheduleAppointmentReminder(c.Request().Context(), c.QueryParam("appointment_id"), when, c.QueryParam("patient_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id, "message": "Reminder scheduled"})
}

func (h *Handler) HydrationReminders(c echo.Context) error {
	interval, err := intParam(c, "interval_hours", DefaultIntervalHours)
	if err != nil {
		return validation.BadRequest(c, err)
	}
	hours, err := intParam(c, "hours", DefaultWindowHours)
	if err != nil {
		return validation.BadRequest(c, err)
	}

	created, err := h.svc.GenerateHydrationSchedule(c.Request().Context(), c.QueryParam("patient_id"), interval, hours)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"created": created})
}

// intParam reads an integer query parameter, falling back to def when the
// parameter is absent.
func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.New(name, "must be an integer").Err()
	}
	return v, nil
}

// respondError maps validation failures to 400 and store failures to 503.
func respondError(c echo.Context, err error) error {
	var verr *validation.Errors
	if errors.As(err, &verr) {
		return validation.BadRequest(c, err)
	}
	return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unavailable")
}
