package ports

import (
	"context"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
)

// ProductListView is the view model for the product listing: the search
// results plus the data the filter bar and action buttons need.
type ProductListView struct {
	Products     []domain.Product
	Categories   []domain.Category
	Capabilities domain.Capabilities
}

// ProductDetailView is the view model for a single product page.
type ProductDetailView struct {
	Product      *domain.Product
	Related      []domain.Product
	Capabilities domain.Capabilities
}

// ProductEditView is the bootstrap data for the add/edit product forms: the
// category choices, plus the product being edited (nil on the add form).
type ProductEditView struct {
	Product    *domain.Product
	Categories []domain.Category
}

// CatalogService assembles catalog view models and forwards mutations. The
// auxiliary fetches inside each view (profile for capabilities, categories,
// related products) are best-effort and never block the primary content;
// only a rejected session aborts the whole view.
type CatalogService interface {
	ListView(ctx context.Context, sessionID string, filter domain.ProductFilter) (*ProductListView, error)
	DetailView(ctx context.Context, sessionID string, productID int) (*ProductDetailView, error)
	EditView(ctx context.Context, productID int) (*ProductEditView, error)
	Categories(ctx context.Context) ([]domain.Category, error)

	Create(ctx context.Context, in domain.CreateProduct) (*domain.Product, error)
	Update(ctx context.Context, productID int, in domain.UpdateProduct) (*domain.Product, error)
	Delete(ctx context.Context, productID int) error
}
