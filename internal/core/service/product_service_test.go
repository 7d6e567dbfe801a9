package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/petitmarche/shop-api/internal/core/domain"
	"github.com/petitmarche/shop-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	clone := *p
	r.nextID++
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	r.products[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Images != nil {
		p.Images = append([]string(nil), (*patch.Images)...)
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func newProductService(t *testing.T, categories ...*domain.Category) (*ProductService, *stubProductRepo, *blobRecorder) {
	t.Helper()
	repo := newStubProductRepo()
	blobs := &blobRecorder{}
	validator := NewReferenceValidator(newStubCategoryRepo(categories...), nil, zerolog.Nop())
	return NewProductService(repo, validator, blobs, zerolog.Nop()), repo, blobs
}

// blobRecorder implements ports.BlobStore and records saved filenames.
type blobRecorder struct {
	saved   []string
	saveErr error
}

func (b *blobRecorder) Save(_ context.Context, filename string, _ io.Reader) (string, error) {
	if b.saveErr != nil {
		return "", b.saveErr
	}
	b.saved = append(b.saved, filename)
	return "stored-" + filename, nil
}

func TestProductService_Create_Success(t *testing.T) {
	svc, _, blobs := newProductService(t, &domain.Category{ID: "c1", Name: "Livres"})

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:       "Roman",
		Price:      12.5,
		Stock:      3,
		CategoryID: "c1",
		Images: []ports.ImageUpload{
			{Filename: "front.jpg", Content: strings.NewReader("a")},
			{Filename: "back.jpg", Content: strings.NewReader("b")},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if product.CategoryID != "c1" {
		t.Fatalf("stored category %q does not match input", product.CategoryID)
	}
	if len(product.Images) != 2 || product.Images[0] != "stored-front.jpg" || product.Images[1] != "stored-back.jpg" {
		t.Fatalf("unexpected images: %v", product.Images)
	}
	if len(blobs.saved) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(blobs.saved))
	}
}

func TestProductService_Create_InvalidCategory(t *testing.T) {
	svc, _, blobs := newProductService(t)

	_, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:       "Roman",
		Price:      12.5,
		CategoryID: "missing",
		Images:     []ports.ImageUpload{{Filename: "front.jpg", Content: strings.NewReader("a")}},
	})
	if !errors.Is(err, domain.ErrInvalidCategoryRef) {
		t.Fatalf("expected ErrInvalidCategoryRef, got %v", err)
	}
	// The reference check runs before storage: nothing may be uploaded.
	if len(blobs.saved) != 0 {
		t.Fatalf("expected no uploads, got %v", blobs.saved)
	}
}

func TestProductService_Update_PartialFields(t *testing.T) {
	svc, repo, _ := newProductService(t, &domain.Category{ID: "c1"})

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Roman", Description: "poche", Price: 12.5, Stock: 3, CategoryID: "c1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newPrice := 9.99
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 9.99 {
		t.Fatalf("price not updated: %v", updated.Price)
	}
	if updated.Name != "Roman" || updated.Description != "poche" || updated.Stock != 3 {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
	if got := repo.products[created.ID]; got.CategoryID != "c1" {
		t.Fatalf("category changed: %q", got.CategoryID)
	}
}

func TestProductService_Update_InvalidCategory(t *testing.T) {
	svc, _, _ := newProductService(t, &domain.Category{ID: "c1"})

	created, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Roman", Price: 1, CategoryID: "c1",
	})

	bad := "missing"
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{CategoryID: &bad}); !errors.Is(err, domain.ErrInvalidCategoryRef) {
		t.Fatalf("expected ErrInvalidCategoryRef, got %v", err)
	}
}

func TestProductService_Update_ImagesReplaceList(t *testing.T) {
	svc, _, _ := newProductService(t, &domain.Category{ID: "c1"})

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Roman", Price: 1, CategoryID: "c1",
		Images: []ports.ImageUpload{
			{Filename: "a.jpg", Content: strings.NewReader("a")},
			{Filename: "b.jpg", Content: strings.NewReader("b")},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{
		Images:        []ports.ImageUpload{{Filename: "c.jpg", Content: strings.NewReader("c")}},
		ReplaceImages: true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	// [a,b] updated with [c] must yield [c], never [a,b,c].
	if len(updated.Images) != 1 || updated.Images[0] != "stored-c.jpg" {
		t.Fatalf("expected full replacement, got %v", updated.Images)
	}
}

func TestProductService_Update_NoImagesKeepsList(t *testing.T) {
	svc, _, _ := newProductService(t, &domain.Category{ID: "c1"})

	created, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Roman", Price: 1, CategoryID: "c1",
		Images: []ports.ImageUpload{{Filename: "a.jpg", Content: strings.NewReader("a")}},
	})

	name := "Nouvelle édition"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.Images) != 1 || updated.Images[0] != "stored-a.jpg" {
		t.Fatalf("image list should be untouched, got %v", updated.Images)
	}
}

func TestProductService_Get_ResolvesCategory(t *testing.T) {
	svc, _, _ := newProductService(t, &domain.Category{ID: "c1", Name: "Livres"})

	created, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Roman", Price: 1, CategoryID: "c1",
	})

	view, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.Category == nil || view.Category.Name != "Livres" {
		t.Fatalf("category not resolved: %+v", view.Category)
	}
}

func TestProductService_Delete_NotFound(t *testing.T) {
	svc, _, _ := newProductService(t)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
