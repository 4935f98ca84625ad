package domain

import "time"

// ProductStatus tracks a catalog item's publication state.
type ProductStatus string

const (
	ProductDraft     ProductStatus = "draft"
	ProductPublished ProductStatus = "published"
	ProductArchived  ProductStatus = "archived"
)

// Valid reports whether s is a known product status.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductDraft, ProductPublished, ProductArchived:
		return true
	}
	return false
}

// MaxProductImages caps the number of image URLs per product.
const MaxProductImages = 5

// Product is a catalog item. Category is free text, not a foreign key.
type Product struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Price          float64       `json:"price"`
	IsPriceVisible bool          `json:"isPriceVisible"`
	SKU            string        `json:"sku"`
	Category       string        `json:"category"`
	Colors         []string      `json:"colors"`
	Sizes          []string      `json:"sizes"`
	Status         ProductStatus `json:"status"`
	Tags           []string      `json:"tags"`
	ImageURLs      []string      `json:"imageUrls"`
	DateAdded      time.Time     `json:"dateAdded"`
}

// ProductCreateRequest is a full product minus id and dateAdded.
type ProductCreateRequest struct {
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Price          float64       `json:"price"`
	IsPriceVisible bool          `json:"isPriceVisible"`
	SKU            string        `json:"sku"`
	Category       string        `json:"category"`
	Colors         []string      `json:"colors"`
	Sizes          []string      `json:"sizes"`
	Status         ProductStatus `json:"status"`
	Tags           []string      `json:"tags"`
	ImageURLs      []string      `json:"imageUrls"`
}

// ProductUpdateRequest is a partial update. Nil fields are left untouched.
type ProductUpdateRequest struct {
	Name           *string        `json:"name,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Price          *float64       `json:"price,omitempty"`
	IsPriceVisible *bool          `json:"isPriceVisible,omitempty"`
	SKU            *string        `json:"sku,omitempty"`
	Category       *string        `json:"category,omitempty"`
	Colors         []string       `json:"colors,omitempty"`
	Sizes          []string       `json:"sizes,omitempty"`
	Status         *ProductStatus `json:"status,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	ImageURLs      []string       `json:"imageUrls,omitempty"`
}

// ProductFilter narrows product list queries.
type ProductFilter struct {
	Status   ProductStatus
	Category string
	Search   string
}

// ProductListResponse is the envelope for product list queries.
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}
