package handlers

import (
	"net/http"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves donated listings.
type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// RegisterPublicRoutes registers the catalog routes that need no token.
func (h *CatalogHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/login/home", h.Home)
	g.GET("/collect-medicine/:address", h.CollectMedicine)
	g.DELETE("/delete/:medicinename", h.DeleteMedicine)
	g.GET("/autocomplete/:query", h.Autocomplete)
}

// RegisterProtectedRoutes registers the catalog routes behind JWT auth.
func (h *CatalogHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/donate", h.Donate)
}

func (h *CatalogHandler) Donate(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.DonateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.catalog.Donate(c.Request().Context(), userID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Medicine donated successfully",
		"listing": listing,
	})
}

// Home lists every donated medicine with its donor.
func (h *CatalogHandler) Home(c echo.Context) error {
	listings, err := h.catalog.Home(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

// CollectMedicine lists medicines available for pickup at an exact address.
func (h *CatalogHandler) CollectMedicine(c echo.Context) error {
	listings, err := h.catalog.FindByAddress(c.Request().Context(), pathParam(c, "address"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

// DeleteMedicine deletes every listing with the given name.
func (h *CatalogHandler) DeleteMedicine(c echo.Context) error {
	deleted, err := h.catalog.DeleteByName(c.Request().Context(), pathParam(c, "medicinename"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Medicine deleted successfully",
		"deleted": deleted,
	})
}

func (h *CatalogHandler) Autocomplete(c echo.Context) error {
	names, err := h.catalog.Search(c.Request().Context(), pathParam(c, "query"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"suggestions": names})
}
