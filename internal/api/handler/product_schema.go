package handler

import "time"

// productForm is the validated shape of the multipart fields on product
// create. Price and stock arrive as strings and are parsed by the handler
// before validation.
type productForm struct {
	Name        string  `validate:"required"`
	Description string  `json:"-"`
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
	CategoryID  string  `validate:"required"`
}

// productResponse is returned by create and update. Category stays a raw id
// and images keep their stored names; denormalization happens on reads only.
type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// categoryResponse is the denormalized category embedded in read responses.
type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// productViewResponse is returned by get and list: the category reference is
// resolved into a document and stored image names are rewritten to
// externally retrievable URLs.
type productViewResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Stock       int               `json:"stock"`
	Images      []string          `json:"images"`
	Category    *categoryResponse `json:"category"`
	CreatedAt   time.Time         `json:"created_at"`
}
