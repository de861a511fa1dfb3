package handler

import (
	"net/http"
	"time"

	"pocketratings/internal/delivery/http/response"
	"pocketratings/internal/delivery/presenter"
	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
}

// PurchaseHandler handles HTTP requests for purchases. Every route requires authentication.
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
}

// NewPurchaseHandler is the constructor for PurchaseHandler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: params.PurchaseUC}
}

// ListPurchases handles GET /purchases?user_id=&product_id=&location_id=&from=&to=
// from and to are RFC 3339 timestamps and bound purchased_at inclusively.
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	var filter entity.PurchaseFilter
	var err error
	if filter.UserID, err = queryUUID(c, "user_id"); err != nil {
		return err
	}
	if filter.ProductID, err = queryUUID(c, "product_id"); err != nil {
		return err
	}
	if filter.LocationID, err = queryUUID(c, "location_id"); err != nil {
		return err
	}
	if filter.From, err = queryTime(c, "from"); err != nil {
		return err
	}
	if filter.To, err = queryTime(c, "to"); err != nil {
		return err
	}
	if filter.IncludeDeleted, err = queryBool(c, "include_deleted"); err != nil {
		return err
	}

	purchases, err := h.purchaseUC.ListPurchases(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.List(c, presenter.NewPurchases(purchases))
}

func (h *PurchaseHandler) GetPurchase(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	purchase, err := h.purchaseUC.GetPurchase(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewPurchase(purchase))
}

// CreatePurchase records a purchase for the authenticated user.
func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req usecase.CreatePurchaseInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	purchase, err := h.purchaseUC.CreatePurchase(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, presenter.NewPurchase(purchase))
}

func (h *PurchaseHandler) UpdatePurchase(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdatePurchaseInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	purchase, err := h.purchaseUC.UpdatePurchase(c.Request().Context(), userID, id, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewPurchase(purchase))
}

func (h *PurchaseHandler) DeletePurchase(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	mode, err := deleteMode(c)
	if err != nil {
		return err
	}

	if err := h.purchaseUC.DeletePurchase(c.Request().Context(), userID, id, mode); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func queryTime(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be an RFC 3339 timestamp")
	}

	return &t, nil
}
