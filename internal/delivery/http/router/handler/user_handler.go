package handler

import (
	"net/http"

	"pocketratings/internal/delivery/http/response"
	"pocketratings/internal/delivery/presenter"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// RegisterUser handles POST /users.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req usecase.RegisterUserInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, presenter.NewUser(user))
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":   presenter.NewUser(out.User),
		"tokens": presenter.NewTokens(out.Tokens),
	})
}

// GetMe returns the authenticated user.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewUser(user))
}

// DeleteUser handles DELETE /users/:id. Users may only delete their own account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if id != userID {
		return domainerrors.ErrForbidden
	}
	mode, err := deleteMode(c)
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id, mode); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
