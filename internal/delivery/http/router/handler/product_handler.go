package handler

import (
	"net/http"

	"pocketratings/internal/delivery/http/response"
	"pocketratings/internal/delivery/presenter"
	"pocketratings/internal/domain/entity"
	"pocketratings/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// ListProducts handles GET /products?category_id=&q=&include_deleted=
func (h *ProductHandler) ListProducts(c echo.Context) error {
	categoryID, err := queryUUID(c, "category_id")
	if err != nil {
		return err
	}
	includeDeleted, err := queryBool(c, "include_deleted")
	if err != nil {
		return err
	}

	rows, err := h.productUC.ListProducts(c.Request().Context(), entity.ProductFilter{
		CategoryID:     categoryID,
		Query:          c.QueryParam("q"),
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		return err
	}

	return response.List(c, presenter.NewProductListing(rows))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewProduct(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, presenter.NewProduct(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdateProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewProduct(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	mode, err := deleteMode(c)
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id, mode); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
