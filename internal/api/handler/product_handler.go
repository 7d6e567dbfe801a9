package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petitmarche/shop-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations. Create and
// update accept multipart forms so image files can ride along with fields.
type ProductHandler struct {
	service ports.ProductService
	baseURL string
}

func NewProductHandler(service ports.ProductService, baseURL string) *ProductHandler {
	return &ProductHandler{service: service, baseURL: baseURL}
}

// Create handles POST /api/products (admin only, multipart).
//
// @Summary      Create a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Product name"
// @Param        description  formData  string  false  "Description"
// @Param        price        formData  number  true   "Price (>= 0)"
// @Param        stock        formData  integer false  "Stock (>= 0)"
// @Param        category     formData  string  true   "Category id"
// @Param        images       formData  file    false  "Image files"
// @Success      201  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if c.FormValue("price") == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "price is required")
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be a number")
	}
	stock := 0
	if raw := c.FormValue("stock"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "stock must be an integer")
		}
	}

	req := productForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
		CategoryID:  c.FormValue("category"),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	uploads, closeFiles, err := openUploads(form.File["images"])
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}
	defer closeFiles()

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		Images:      uploads,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// List handles GET /api/products (public). Categories are denormalized and
// image names resolved against the base URL.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productViewResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]productViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toProductViewResponse(v, h.baseURL))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/products/:id (public).
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productViewResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductViewResponse(*view, h.baseURL))
}

// Update handles PUT /api/products/:id (admin only, multipart). Only fields
// present in the form are applied; supplying image files replaces the whole
// stored list.
//
// @Summary      Update a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var input ports.UpdateProductInput
	if v, ok := formField(form, "name"); ok {
		input.Name = &v
	}
	if v, ok := formField(form, "description"); ok {
		input.Description = &v
	}
	if v, ok := formField(form, "price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "price must be a non-negative number")
		}
		input.Price = &price
	}
	if v, ok := formField(form, "stock"); ok {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "stock must be a non-negative integer")
		}
		input.Stock = &stock
	}
	if v, ok := formField(form, "category"); ok {
		input.CategoryID = &v
	}

	if files := form.File["images"]; len(files) > 0 {
		uploads, closeFiles, err := openUploads(files)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
		}
		defer closeFiles()
		input.Images = uploads
		input.ReplaceImages = true
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/products/:id (admin only).
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Produit supprimé"})
}

// formField reports whether the field was supplied at all, so partial
// updates can distinguish "absent" from "empty".
func formField(form *multipart.Form, name string) (string, bool) {
	values, ok := form.Value[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// openUploads opens every file header and returns the uploads plus a single
// closer for all of them.
func openUploads(headers []*multipart.FileHeader) ([]ports.ImageUpload, func(), error) {
	uploads := make([]ports.ImageUpload, 0, len(headers))
	files := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, f)
		uploads = append(uploads, ports.ImageUpload{
			Filename: fh.Filename,
			Size:     fh.Size,
			Content:  f,
		})
	}
	return uploads, closeAll, nil
}
