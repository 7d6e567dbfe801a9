package handler

import (
	"strings"

	"github.com/petitmarche/shop-api/internal/core/domain"
	"github.com/petitmarche/shop-api/internal/core/ports"
)

// --- Service result → HTTP response ---

func toProductResponse(p *domain.Product) productResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Images:      images,
		Category:    p.CategoryID,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductViewResponse(v ports.ProductView, baseURL string) productViewResponse {
	resp := productViewResponse{
		ID:          v.Product.ID,
		Name:        v.Product.Name,
		Description: v.Product.Description,
		Price:       v.Product.Price,
		Stock:       v.Product.Stock,
		Images:      imageURLs(v.Product.Images, baseURL),
		CreatedAt:   v.Product.CreatedAt,
	}
	if v.Category != nil {
		resp.Category = &categoryResponse{
			ID:          v.Category.ID,
			Name:        v.Category.Name,
			Description: v.Category.Description,
		}
	}
	return resp
}

// imageURLs rewrites stored blob names into URLs retrievable by clients.
func imageURLs(names []string, baseURL string) []string {
	urls := make([]string, 0, len(names))
	base := strings.TrimSuffix(baseURL, "/")
	for _, name := range names {
		urls = append(urls, base+"/uploads/"+name)
	}
	return urls
}
