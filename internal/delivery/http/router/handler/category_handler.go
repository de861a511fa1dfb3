package handler

import (
	"net/http"
	"strconv"

	"pocketratings/internal/delivery/http/response"
	"pocketratings/internal/delivery/presenter"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

// CategoryHandler serves the category tree and category mutations.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{categoryUC: params.CategoryUC}
}

// GetTree handles GET /categories?parent_id=&depth=&include_deleted=
func (h *CategoryHandler) GetTree(c echo.Context) error {
	parentID, err := queryUUID(c, "parent_id")
	if err != nil {
		return err
	}
	includeDeleted, err := queryBool(c, "include_deleted")
	if err != nil {
		return err
	}
	depth := 0
	if raw := c.QueryParam("depth"); raw != "" {
		depth, err = strconv.Atoi(raw)
		if err != nil || depth < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("depth: must be a non-negative integer")
		}
	}

	tree, err := h.categoryUC.GetTree(c.Request().Context(), usecase.CategoryTreeQuery{
		ParentID:       parentID,
		Depth:          depth,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewCategoryTree(tree))
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewCategory(category))
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req usecase.CreateCategoryInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, presenter.NewCategory(category))
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdateCategoryInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewCategory(category))
}

// DeleteCategory handles DELETE /categories/:id, soft unless ?force=true.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	mode, err := deleteMode(c)
	if err != nil {
		return err
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), id, mode); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
