package records

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
	g.POST("/doctors", h.CreateDoctor)
	g.GET("/doctors", h.ListDoctors)
	g.POST("/patients", h.CreatePatient)
	g.GET("/patients", h.ListPatients)
	g.POST("/families", h.CreateFamily)
	g.GET("/families", h.ListFamilies)
	g.POST("/admins", h.CreateAdmin)
	g.GET("/admins", h.ListAdmins)
	g.POST("/appointments", h.CreateAppointment)
	g.GET("/appointments", h.ListAppointments)
	g.POST("/payments", h.CreatePayment)
	g.GET("/payments", h.ListPayments)
	g.POST("/articles", h.CreateArticle)
	g.GET("/articles", h.ListArticles)
	g.POST("/emergencies", h.CreateEmergency)
	g.GET("/emergencies", h.ListEmergencies)
}

// validatable is implemented by every record schema.
type validatable interface {
	Validate() error
}

// create binds, validates, and persists one record, replying with the
// generated id.
func create[T any, PT interface {
	validatable
	*T
}](h *Handler, c echo.Context, collection, message string) error {
	var rec T
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := PT(&rec).Validate(); err != nil {
		return validation.BadRequest(c, err)
	}
	id, err := h.store.Create(c.Request().Context(), collection, rec)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unavailable")
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id, "message": message})
}

// list fetches a collection in insertion order and pages it.
func list[T any](h *Handler, c echo.Context, collection string) error {
	items, err := docstore.FetchAs[T](c.Request().Context(), h.store, collection, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unavailable")
	}
	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg.Limit, pg.Offset))
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	return create[Doctor](h, c, CollectionDoctor, "Doctor created")
}

func (h *Handler) ListDoctors(c echo.Context) error {
	return list[Doctor](h, c, CollectionDoctor)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	return create[Patient](h, c, CollectionPatient, "Patient created")
}

func (h *Handler) ListPatients(c echo.Context) error {
	return list[Patient](h, c, CollectionPatient)
}

func (h *Handler) CreateFamily(c echo.Context) error {
	return create[Family](h, c, CollectionFamily, "Family created")
}

func (h *Handler) ListFamilies(c echo.Context) error {
	return list[Family](h, c, CollectionFamily)
}

func (h *Handler) CreateAdmin(c echo.Context) error {
	return create[Admin](h, c, CollectionAdmin, "Admin created")
}

func (h *Handler) ListAdmins(c echo.Context) error {
	return list[Admin](h, c, CollectionAdmin)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	return create[Appointment](h, c, CollectionAppointment, "Appointment created")
}

func (h *Handler) ListAppointments(c echo.Context) error {
	return list[Appointment](h, c, CollectionAppointment)
}

func (h *Handler) CreatePayment(c echo.Context) error {
	return create[Payment](h, c, CollectionPayment, "Payment created")
}

func (h *Handler) ListPayments(c echo.Context) error {
	return list[Payment](h, c, CollectionPayment)
}

func (h *Handler) CreateArticle(c echo.Context) error {
	return create[Article](h, c, CollectionArticle, "Article created")
}

func (h *Handler) ListArticles(c echo.Context) error {
	return list[Article](h, c, CollectionArticle)
}

func (h *Handler) CreateEmergency(c echo.Context) error {
	return create[Emergency](h, c, CollectionEmergency, "Emergency contact created")
}

func (h *Handler) ListEmergencies(c echo.Context) error {
	return list[Emergency](h, c, CollectionEmergency)
}
