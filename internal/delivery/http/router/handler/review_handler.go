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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// ListReviews handles GET /reviews?product_id=&user_id=&include_deleted=
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	var filter entity.ReviewFilter
	var err error
	if filter.ProductID, err = queryUUID(c, "product_id"); err != nil {
		return err
	}
	if filter.UserID, err = queryUUID(c, "user_id"); err != nil {
		return err
	}
	if filter.IncludeDeleted, err = queryBool(c, "include_deleted"); err != nil {
		return err
	}

	rows, err := h.reviewUC.ListReviews(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.List(c, presenter.NewReviewListing(rows))
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewReview(review))
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req usecase.CreateReviewInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, presenter.NewReview(review))
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdateReviewInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), userID, id, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, presenter.NewReview(review))
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
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

	if err := h.reviewUC.DeleteReview(c.Request().Context(), userID, id, mode); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
