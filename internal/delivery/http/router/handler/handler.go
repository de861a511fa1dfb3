// Package handler holds the echo handlers of the HTTP API.
package handler

import (
	"strconv"

	deliverycontext "pocketratings/internal/delivery/context"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id: must be a uuid")
	}

	return id, nil
}

// queryUUID parses an optional uuid query parameter. An absent parameter yields nil.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a uuid")
	}

	return &id, nil
}

// queryBool parses an optional boolean query parameter such as include_deleted or force.
func queryBool(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a boolean")
	}

	return v, nil
}

// deleteMode reads ?force=true as a hard delete.
func deleteMode(c echo.Context) (usecase.DeleteMode, error) {
	force, err := queryBool(c, "force")
	if err != nil {
		return usecase.SoftDelete, err
	}
	if force {
		return usecase.HardDelete, nil
	}

	return usecase.SoftDelete, nil
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// currentUser returns the authenticated user. Routes using it sit behind the auth middleware.
func currentUser(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}
