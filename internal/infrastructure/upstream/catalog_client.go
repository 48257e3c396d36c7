package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
)

// CatalogClient wraps the remote product and category endpoints. None of
// them require an auth header upstream.
type CatalogClient struct {
	c *Client
}

// NewCatalogClient creates a CatalogClient on top of the shared API client.
func NewCatalogClient(c *Client) *CatalogClient {
	return &CatalogClient{c: c}
}

// Search queries GET /products. Absent filters are omitted from the query
// entirely, never sent as empty or null values. Result order is the
// server's.
func (cc *CatalogClient) Search(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := url.Values{}
	if filter.Title != "" {
		query.Set("title", filter.Title)
	}
	if filter.CategoryID > 0 {
		query.Set("categoryId", strconv.Itoa(filter.CategoryID))
	}
	if filter.PriceMin != nil {
		query.Set("price_min", strconv.FormatFloat(*filter.PriceMin, 'f', -1, 64))
	}
	if filter.PriceMax != nil {
		query.Set("price_max", strconv.FormatFloat(*filter.PriceMax, 'f', -1, 64))
	}

	var products []domain.Product
	if err := cc.c.doJSON(ctx, "product_search", http.MethodGet, "/products", query, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID fetches GET /products/{id}. Unknown ids come back as
// domain.ErrProductNotFound so views can render a load-error state.
func (cc *CatalogClient) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	if err := cc.c.doJSON(ctx, "product_get", http.MethodGet, "/products/"+strconv.Itoa(id), nil, "", nil, &product); err != nil {
		if isNotFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Related fetches GET /products/{id}/related. Callers treat failures as
// best-effort.
func (cc *CatalogClient) Related(ctx context.Context, id int) ([]domain.Product, error) {
	var products []domain.Product
	if err := cc.c.doJSON(ctx, "product_related", http.MethodGet, "/products/"+strconv.Itoa(id)+"/related", nil, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories fetches GET /categories: the full sequence, no pagination.
func (cc *CatalogClient) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := cc.c.doJSON(ctx, "categories", http.MethodGet, "/categories", nil, "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create posts a new product to POST /products/.
func (cc *CatalogClient) Create(ctx context.Context, in domain.CreateProduct) (*domain.Product, error) {
	var product domain.Product
	if err := cc.c.doJSON(ctx, "product_create", http.MethodPost, "/products/", nil, "", in, &product); err != nil {
		return nil, mutationError(err)
	}
	return &product, nil
}

// Update sends a partial payload to PUT /products/{id}.
func (cc *CatalogClient) Update(ctx context.Context, id int, in domain.UpdateProduct) (*domain.Product, error) {
	var product domain.Product
	if err := cc.c.doJSON(ctx, "product_update", http.MethodPut, "/products/"+strconv.Itoa(id), nil, "", in, &product); err != nil {
		return nil, mutationError(err)
	}
	return &product, nil
}

// Delete issues DELETE /products/{id}. The upstream boolean body is ignored.
func (cc *CatalogClient) Delete(ctx context.Context, id int) error {
	if err := cc.c.doJSON(ctx, "product_delete", http.MethodDelete, "/products/"+strconv.Itoa(id), nil, "", nil, nil); err != nil {
		return mutationError(err)
	}
	return nil
}

// isNotFound matches the upstream's "no such entity" responses on reads.
// The API reports missing products as 400 with an entity-not-found message
// as well as plain 404.
func isNotFound(err error) bool {
	var ue *Error
	if !errors.As(err, &ue) {
		return false
	}
	return ue.StatusCode == http.StatusNotFound || ue.StatusCode == http.StatusBadRequest
}

// mutationError maps upstream rejections of create/update/delete calls into
// domain errors: validation messages stay verbatim, privilege rejections
// become ErrForbidden even when the client-side admin gate was bypassed.
func mutationError(err error) error {
	var ue *Error
	if !errors.As(err, &ue) {
		return err
	}
	switch ue.StatusCode {
	case http.StatusNotFound:
		return domain.ErrProductNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &domain.ValidationError{Message: ue.Message}
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrForbidden, ue.Message)
	}
	return err
}
