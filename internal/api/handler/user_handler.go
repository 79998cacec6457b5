package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qfnexora/finance-api/internal/core/ports"
)

type settingsRequest struct {
	Currency string `json:"currency"`
	Language string `json:"language" validate:"omitempty,oneof=en fr"`
	Theme    string `json:"theme"    validate:"omitempty,oneof=light dark"`
}

// UserHandler serves the authenticated user's profile and settings.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile handles GET /users/me.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Router       /users/me [get]
func (h *UserHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// UpdateSettings handles PUT /users/me/settings.
//
// @Summary      Update display preferences
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      settingsRequest  true  "Preference fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/me/settings [put]
func (h *UserHandler) UpdateSettings(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateSettings(c.Request().Context(), userID, ports.SettingsInput{
		Currency: req.Currency,
		Language: req.Language,
		Theme:    req.Theme,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}
