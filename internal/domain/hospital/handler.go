package hospital

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/api/internal/platform/docstore"
	"github.com/healthtrack/api/pkg/pagination"
	"github.com/healthtrack/api/pkg/validation"
)

type Handler struct {
	store docstore.Store
}

func NewHandler(store docstore.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/hospitals", h.Create)
	g.GET("/hospitals", h.List)
	g.POST("/nearby-hospitals", h.Nearby)
}

func (h *Handler) Create(c echo.Context) error {
	var rec Hospital
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := rec.Validate(); err != nil {
		return validation.BadRequest(c, err)
	}
	id, err := h.store.Create(c.Request().Context(), Collection, rec)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unavailable")
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id, "message": "Hospital created"})
}

func (h *Handler) List(c echo.Context) error {
	items, err := docstore.FetchAs[Hospital](c.Request().Context(), h.store, Collection, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unavailable")
	}
	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

// Nearby runs the proximity search over every stored hospital.
func (h *Handler) Nearby(c echo.Context) error {
	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return validation.BadRequest(c, err)
	}

	candidates, err := docstore.FetchAs[Hospital](c.Request().Context(), h.store, Collection, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unavailable")
	}

	return c.JSON(http.StatusOK, Nearby(*req.Lat, *req.Lng, req.Radius(), candidates))
}
