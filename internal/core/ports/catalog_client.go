package ports

import (
	"context"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
)

// CatalogClient wraps the remote CRUD and search calls for products and
// categories. None of these endpoints require authentication upstream.
type CatalogClient interface {
	// Search queries the product listing. Absent filters are omitted from
	// the query entirely. Result order is the server's; no client re-sort.
	Search(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)

	// GetByID returns domain.ErrProductNotFound for unknown ids.
	GetByID(ctx context.Context, id int) (*domain.Product, error)

	// Related is best-effort: failures must not block the primary product.
	Related(ctx context.Context, id int) ([]domain.Product, error)

	// Categories returns the full category sequence, no pagination.
	Categories(ctx context.Context) ([]domain.Category, error)

	Create(ctx context.Context, in domain.CreateProduct) (*domain.Product, error)
	Update(ctx context.Context, id int, in domain.UpdateProduct) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

// CategoryCache is a read-through cache for the category list, which is
// immutable from the client's perspective.
type CategoryCache interface {
	Get(ctx context.Context) ([]domain.Category, bool)
	Set(ctx context.Context, categories []domain.Category) error
}
