package handler

import (
	"net/http"

	"pocketratings/internal/delivery/http/response"
	"pocketratings/internal/delivery/presenter"
	"pocketratings/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler handles HTTP requests for shop locations.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{locationUC: params.LocationUC}
}

func (h *LocationHandler) ListLocations(c echo.Context) error {
	includeDeleted, err := queryBool(c, "include_deleted")
	if err != nil {
		return err
	}

	locations, err := h.locationUC.ListLocations(c.Request().Context(), includeDeleted)
	if err != nil {
		return err
	}

	return response.List(c, presenter.NewLocations(locations))
}

func (h *LocationHandler) GetLocation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewLocation(location))
}

func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var req usecase.CreateLocationInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, presenter.NewLocation(location))
}

func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdateLocationInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewLocation(location))
}

func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	mode, err := deleteMode(c)
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), id, mode); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
