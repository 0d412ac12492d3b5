package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edukita/learning-api/internal/core/domain"
	"github.com/edukita/learning-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	authService ports.AuthService
}

func NewUserHandler(userService ports.UserService, authService ports.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

// Profile returns the authenticated user's account.
//
// @Summary      Get own profile
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200   {object}  profileResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Profile(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: user})
}

// UpdateProfile merges the provided fields into the authenticated user's account.
//
// @Summary      Update own profile
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  updateProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), identity.UserID, domain.UserPatch{
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updateProfileResponse{Message: "profile updated", User: user})
}

// ChangePassword replaces the authenticated user's password.
//
// @Summary      Change own password
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /users/change-password [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password changed"})
}

// ListStudents returns all student accounts. Teacher role only.
//
// @Summary      List student accounts
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200   {object}  studentsResponse
// @Failure      403   {object}  errorResponse
// @Router       /users/students [get]
func (h *UserHandler) ListStudents(c echo.Context) error {
	students, err := h.userService.ListStudents(c.Request().Context())
	if err != nil {
		return err
	}
	if students == nil {
		students = []domain.User{}
	}
	return c.JSON(http.StatusOK, studentsResponse{Students: students})
}

// ListUsers returns all accounts.
//
// @Summary      List all accounts
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200   {object}  usersResponse
// @Failure      500   {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}
