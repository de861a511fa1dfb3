package cache

import (
	"pocketratings/config"
	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/domain/service"
)

// NewProductListCache caches the products/categories join.
func NewProductListCache(cfg *config.Config, repo repository.ProductRepository) service.ListCache[entity.ProductListing] {
	return NewListCache("product", repo.ListWithCategory, cfg.Cache.Products.Enabled)
}

// NewReviewListCache caches the reviews/products/users join.
func NewReviewListCache(cfg *config.Config, repo repository.ReviewRepository) service.ListCache[entity.ReviewListing] {
	return NewListCache("review", repo.ListWithRelations, cfg.Cache.Reviews.Enabled)
}
