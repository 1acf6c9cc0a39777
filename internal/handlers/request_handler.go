package handlers

import (
	"net/http"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// RequestHandler handles medicine requests.
type RequestHandler struct {
	workflow services.MatchingWorkflow
	ledger   services.RequestLedger
}

func NewRequestHandler(workflow services.MatchingWorkflow, ledger services.RequestLedger) *RequestHandler {
	return &RequestHandler{workflow: workflow, ledger: ledger}
}

// RegisterRequestRoutes registers request routes; g must require JWT auth.
func (h *RequestHandler) RegisterRequestRoutes(g *echo.Group) {
	g.POST("/request/:medicinename", h.RequestMedicine)
	g.GET("/requests", h.GetRequests)
}

func (h *RequestHandler) RequestMedicine(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var contact models.ContactInfo
	if err := c.Bind(&contact); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&contact); err != nil {
		return err
	}

	record, err := h.workflow.RequestItem(c.Request().Context(), pathParam(c, "medicinename"), userID, contact)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Medicine requested successfully",
		"newRequest": record,
	})
}

// GetRequests lists every request with requester display info.
func (h *RequestHandler) GetRequests(c echo.Context) error {
	requests, err := h.ledger.ListAll(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, requests)
}
