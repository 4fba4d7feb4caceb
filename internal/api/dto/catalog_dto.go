package dto

// CreateProductRequest for creating a catalog product
type CreateProductRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=200"`
	Description    string  `json:"description"`
	UnitPrice      float64 `json:"unit_price" binding:"required,gt=0"`
	Stock          int     `json:"stock" binding:"gte=0"`
	ImageURL       string  `json:"image_url"`
	CategoryID     *int64  `json:"category_id"`
	ManufacturerID *int64  `json:"manufacturer_id"`
}

// UpdateProductRequest for partial product updates
type UpdateProductRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=2,max=200"`
	Description    *string  `json:"description"`
	UnitPrice      *float64 `json:"unit_price" binding:"omitempty,gt=0"`
	Stock          *int     `json:"stock" binding:"omitempty,gte=0"`
	ImageURL       *string  `json:"image_url"`
	Active         *bool    `json:"active"`
	CategoryID     *int64   `json:"category_id"`
	ManufacturerID *int64   `json:"manufacturer_id"`
}

// CreateCategoryRequest for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
}

// CreateManufacturerRequest for creating a manufacturer
type CreateManufacturerRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Country string `json:"country"`
}
