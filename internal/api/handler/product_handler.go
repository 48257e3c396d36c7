package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

// ProductHandler serves the product views and forwards catalog mutations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// --- Request / Response types ---

type createProductRequest struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description string   `json:"description" validate:"required,min=10"`
	CategoryID  int      `json:"categoryId" validate:"required,gt=0"`
	Images      []string `json:"images" validate:"required,min=1,dive,required,url"`
}

type updateProductRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=3"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,min=10"`
	CategoryID  *int     `json:"categoryId" validate:"omitempty,gt=0"`
	Images      []string `json:"images" validate:"omitempty,min=1,dive,required,url"`
}

type productListResponse struct {
	Products     []domain.Product    `json:"products"`
	Categories   []domain.Category   `json:"categories"`
	Capabilities domain.Capabilities `json:"capabilities"`
}

type productDetailResponse struct {
	Product      *domain.Product     `json:"product"`
	Related      []domain.Product    `json:"related"`
	Capabilities domain.Capabilities `json:"capabilities"`
}

type productFormResponse struct {
	Product    *domain.Product   `json:"product,omitempty"`
	Categories []domain.Category `json:"categories"`
}

// List handles GET /products: the search results plus filter-bar data.
//
// @Summary      List and search products
// @Tags         products
// @Produce      json
// @Param        title       query     string  false  "Title substring filter"
// @Param        categoryId  query     int     false  "Category filter"
// @Param        price_min   query     number  false  "Minimum price"
// @Param        price_max   query     number  false  "Maximum price"
// @Success      200         {object}  productListResponse
// @Failure      401         {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	view, err := h.service.ListView(c.Request().Context(), sessionID(c), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productListResponse{
		Products:     view.Products,
		Categories:   view.Categories,
		Capabilities: view.Capabilities,
	})
}

// Detail handles GET /products/detail/:id.
func (h *ProductHandler) Detail(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	view, err := h.service.DetailView(c.Request().Context(), sessionID(c), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productDetailResponse{
		Product:      view.Product,
		Related:      view.Related,
		Capabilities: view.Capabilities,
	})
}

// AddForm handles GET /products/add: the category choices for the add form.
// The admin gate ran before this handler.
func (h *ProductHandler) AddForm(c echo.Context) error {
	view, err := h.service.EditView(c.Request().Context(), 0)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productFormResponse{Categories: view.Categories})
}

// EditForm handles GET /products/edit/:id: the product under edit plus the
// category choices.
func (h *ProductHandler) EditForm(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	view, err := h.service.EditView(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productFormResponse{Product: view.Product, Categories: view.Categories})
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return &domain.ValidationError{Message: "invalid payload"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), domain.CreateProduct{
		Title:       req.Title,
		Price:       *req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id with a partial payload.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return &domain.ValidationError{Message: "invalid payload"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), id, domain.UpdateProduct{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id. List views reload via a fresh search
// afterwards; nothing is spliced locally.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Categories handles GET /categories.
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// --- Parsing helpers ---

func productID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Message: "invalid product id"}
	}
	return id, nil
}

// parseFilter builds the search filter from query parameters. Absent
// parameters stay absent; they are never forwarded as empty values.
func parseFilter(c echo.Context) (domain.ProductFilter, error) {
	var filter domain.ProductFilter

	filter.Title = c.QueryParam("title")

	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return filter, &domain.ValidationError{Message: "categoryId must be a positive number"}
		}
		filter.CategoryID = id
	}
	if raw := c.QueryParam("price_min"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil || min < 0 {
			return filter, &domain.ValidationError{Message: "price_min must be a non-negative number"}
		}
		filter.PriceMin = &min
	}
	if raw := c.QueryParam("price_max"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil || max < 0 {
			return filter, &domain.ValidationError{Message: "price_max must be a non-negative number"}
		}
		filter.PriceMax = &max
	}

	return filter, nil
}
