package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shopzone/storefront-gateway/internal/api/metrics"
	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

// maxRelated caps how many related products a detail view shows.
const maxRelated = 4

// CatalogService assembles the product view models and forwards mutations to
// the upstream API. Each view's independent fetches run in parallel and may
// complete in any order; every fetch updates only its own slot.
type CatalogService struct {
	catalog ports.CatalogClient
	auth    ports.AuthService
	cache   ports.CategoryCache
	log     zerolog.Logger
}

func NewCatalogService(catalog ports.CatalogClient, auth ports.AuthService, cache ports.CategoryCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, auth: auth, cache: cache, log: log}
}

// ListView loads the product listing: products are the primary content,
// categories and the capability-deriving profile are best-effort. A session
// rejected by the upstream aborts the view so the user lands on login.
func (s *CatalogService) ListView(ctx context.Context, sessionID string, filter domain.ProductFilter) (*ports.ProductListView, error) {
	view := &ports.ProductListView{}

	var (
		wg          sync.WaitGroup
		productsErr error
		sessionErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		products, err := s.catalog.Search(ctx, filter)
		if err != nil {
			productsErr = err
			return
		}
		view.Products = products
	}()
	go func() {
		defer wg.Done()
		categories, err := s.Categories(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to load categories for listing")
			return
		}
		view.Categories = categories
	}()
	go func() {
		defer wg.Done()
		profile, err := s.auth.Profile(ctx, sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionInvalid) {
				sessionErr = err
				return
			}
			s.log.Warn().Err(err).Msg("failed to load profile for listing")
			return
		}
		view.Capabilities = profile.Capabilities()
	}()
	wg.Wait()

	if sessionErr != nil {
		return nil, sessionErr
	}
	if productsErr != nil {
		return nil, productsErr
	}
	return view, nil
}

// DetailView loads a single product page: the product is the primary
// content, related products and the profile are best-effort.
func (s *CatalogService) DetailView(ctx context.Context, sessionID string, productID int) (*ports.ProductDetailView, error) {
	view := &ports.ProductDetailView{}

	var (
		wg         sync.WaitGroup
		productErr error
		sessionErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		product, err := s.catalog.GetByID(ctx, productID)
		if err != nil {
			productErr = err
			return
		}
		view.Product = product
	}()
	go func() {
		defer wg.Done()
		related, err := s.catalog.Related(ctx, productID)
		if err != nil {
			s.log.Warn().Err(err).Int("product_id", productID).Msg("failed to load related products")
			return
		}
		if len(related) > maxRelated {
			related = related[:maxRelated]
		}
		view.Related = related
	}()
	go func() {
		defer wg.Done()
		profile, err := s.auth.Profile(ctx, sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionInvalid) {
				sessionErr = err
				return
			}
			s.log.Warn().Err(err).Msg("failed to load profile for detail view")
			return
		}
		view.Capabilities = profile.Capabilities()
	}()
	wg.Wait()

	if sessionErr != nil {
		return nil, sessionErr
	}
	if productErr != nil {
		return nil, productErr
	}
	return view, nil
}

// EditView loads the bootstrap data for the edit form: the product being
// edited (primary) and the category choices (best-effort). The add form uses
// the same view with a zero product id.
func (s *CatalogService) EditView(ctx context.Context, productID int) (*ports.ProductEditView, error) {
	view := &ports.ProductEditView{}

	var (
		wg         sync.WaitGroup
		productErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if productID == 0 {
			return
		}
		product, err := s.catalog.GetByID(ctx, productID)
		if err != nil {
			productErr = err
			return
		}
		view.Product = product
	}()
	go func() {
		defer wg.Done()
		categories, err := s.Categories(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to load categories for edit form")
			return
		}
		view.Categories = categories
	}()
	wg.Wait()

	if productErr != nil {
		return nil, productErr
	}
	return view, nil
}

// Categories serves the category list cache-first. The list is immutable
// from the client's perspective, so a short-lived cache entry is safe.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	if categories, ok := s.cache.Get(ctx); ok {
		metrics.CategoryCacheTotal.WithLabelValues("hit").Inc()
		return categories, nil
	}
	metrics.CategoryCacheTotal.WithLabelValues("miss").Inc()

	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, categories); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache categories")
	}
	return categories, nil
}

// Create forwards a new product upstream. The server is the enforcement
// point; a rejection from a non-privileged token surfaces as ErrForbidden.
func (s *CatalogService) Create(ctx context.Context, in domain.CreateProduct) (*domain.Product, error) {
	return s.catalog.Create(ctx, in)
}

// Update forwards a partial product update upstream.
func (s *CatalogService) Update(ctx context.Context, productID int, in domain.UpdateProduct) (*domain.Product, error) {
	return s.catalog.Update(ctx, productID, in)
}

// Delete removes a product upstream. No optimistic local mutation: list
// views reload via a fresh search afterwards.
func (s *CatalogService) Delete(ctx context.Context, productID int) error {
	return s.catalog.Delete(ctx, productID)
}
