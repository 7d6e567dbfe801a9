package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry. Images holds the ordered stored names returned
// by the blob store; CategoryID must reference an existing Category, checked
// by the reference validator before every mutating write since the document
// store is schemaless and enforces nothing.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Images      []string  `json:"images"`
	CategoryID  string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
