package domain

// Category is read-only from the client's perspective; the upstream API
// exposes no category mutations.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Product is the catalog entity as served by the upstream API. Identity is
// server-assigned.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    Category `json:"category"`
}

// ProductFilter captures the optional search filters for the product listing.
// Zero/nil fields are absent and must be omitted from the outgoing query
// entirely, never sent as empty values.
type ProductFilter struct {
	Title      string
	CategoryID int
	PriceMin   *float64
	PriceMax   *float64
}

// IsZero reports whether no filter is set.
func (f ProductFilter) IsZero() bool {
	return f.Title == "" && f.CategoryID == 0 && f.PriceMin == nil && f.PriceMax == nil
}

// CreateProduct is the creation payload. CategoryID replaces the embedded
// category; the add form always submits Images as a single-element slice
// even though the type allows many.
type CreateProduct struct {
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	CategoryID  int      `json:"categoryId"`
	Images      []string `json:"images"`
}

// UpdateProduct is a partial projection of CreateProduct; nil fields are
// left untouched upstream.
type UpdateProduct struct {
	Title       *string  `json:"title,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	CategoryID  *int     `json:"categoryId,omitempty"`
	Images      []string `json:"images,omitempty"`
}
