package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ProfileHandler serves profiles and feedback.
type ProfileHandler struct {
	reputation services.ReputationService
}

func NewProfileHandler(reputation services.ReputationService) *ProfileHandler {
	return &ProfileHandler{reputation: reputation}
}

// RegisterProfileRoutes registers profile routes; g must require JWT auth.
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.POST("/feedback", h.SubmitFeedback)
	g.GET("/profile", h.GetProfile)
	g.GET("/profile/:id", h.GetUserProfile)
}

func (h *ProfileHandler) SubmitFeedback(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.reputation.SubmitFeedback(c.Request().Context(), userID, req.RatedUserID, req.Rating, req.Comment); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Feedback submitted successfully."})
}

// GetProfile retrieves the authenticated user's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return h.renderProfile(c, userID)
}

// GetUserProfile retrieves another user's profile by id
func (h *ProfileHandler) GetUserProfile(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return h.renderProfile(c, uint(id))
}

func (h *ProfileHandler) renderProfile(c echo.Context, userID uint) error {
	profile, err := h.reputation.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
