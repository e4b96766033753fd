package metrics

import (
	"errors"
	"net/http"

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
	g.POST("/health-metrics", h.CreateMetric)
	g.GET("/health-metrics", h.ListMetrics)
	g.POST("/reports", h.CreateReport)
	g.GET("/reports", h.ListReports)
	g.GET("/dashboard/summary", h.DashboardSummary)
}

func (h *Handler) CreateMetric(c echo.Context) error {
	var m HealthMetric
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.CreateMetric(c.Request().Context(), &m)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id, "message": "Health metric recorded"})
}

func (h *Handler) ListMetrics(c echo.Context) error {
	items, err := h.svc.ListMetrics(c.Request().Context(), c.QueryParam("patient_id"))
	if err != nil {
		return respondError(c, err)
	}
	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

func (h *Handler) CreateReport(c echo.Context) error {
	var r Report
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.CreateReport(c.Request().Context(), &r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id, "message": "Report uploaded"})
}

func (h *Handler) ListReports(c echo.Context) error {
	items, err := h.svc.ListReports(c.Request().Context(), c.QueryParam("patient_id"))
	if err != nil {
		return respondError(c, err)
	}
	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

// DashboardSummary always answers 200; an unknown or absent patient_id
// yields the all-empty summary.
func (h *Handler) DashboardSummary(c echo.Context) error {
	summary, err := h.svc.Summarize(c.Request().Context(), c.QueryParam("patient_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

func respondError(c echo.Context, err error) error {
	var verr *validation.Errors
	if errors.As(err, &verr) {
		return validation.BadRequest(c, err)
	}
	return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unavailable")
}
