package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/storemate/backend/internal/errs"
	"github.com/storemate/backend/internal/model"
	"github.com/storemate/backend/internal/server"
	"github.com/storemate/backend/internal/service"
)

// AddProductRequest is the product creation payload. Price is a pointer so
// absence is distinguishable from zero; stock defaults to 0 when omitted.
type AddProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *Number  `json:"price"`
	Stock       *Integer `json:"stock"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
}

// Validate responds with the single combined message this endpoint has
// always used.
func (r *AddProductRequest) Validate() error {
	if r.Name == "" || r.Price == nil || r.Category == "" {
		return errs.NewBadRequestError("Product name, price, and category are required")
	}
	return nil
}

// ListProductsRequest is empty: listing takes no input.
type ListProductsRequest struct{}

// Validate has nothing to check.
func (r *ListProductsRequest) Validate() error { return nil }

// UpdateProductRequest is an explicit partial patch. A nil field (absent or
// JSON null) leaves the stored value untouched; there are no required
// fields. The id comes from the path and is format-checked by the service
// before any query.
type UpdateProductRequest struct {
	ID          string   `param:"id" json:"-"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *Number  `json:"price"`
	Stock       *Integer `json:"stock"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
}

// Validate has nothing to check; id format is the service's concern.
func (r *UpdateProductRequest) Validate() error { return nil }

// DeleteProductRequest carries only the path id.
type DeleteProductRequest struct {
	ID string `param:"id" json:"-"`
}

// Validate has nothing to check.
func (r *DeleteProductRequest) Validate() error { return nil }

// AddProductResponse is the 201 body for a created product.
type AddProductResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// MessageResponse is the plain confirmation body for update and delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProductResponse is the shaped catalog record returned by the list
// endpoint, with the store id in its external string form.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

// ProductHandler serves catalog CRUD.
type ProductHandler struct {
	Handler
	product *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(s *server.Server, services *service.Services) *ProductHandler {
	return &ProductHandler{
		Handler: NewHandler(s),
		product: services.Product,
	}
}

// Add creates a product, applying defaults for omitted optional fields.
func (h *ProductHandler) Add(c echo.Context, req *AddProductRequest) (*AddProductResponse, error) {
	stock := 0
	if req.Stock != nil {
		stock = req.Stock.Int()
	}

	id, err := h.product.Add(c.Request().Context(), service.AddProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Float64(),
		Stock:       stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	return &AddProductResponse{
		Message: "Product added successfully",
		ID:      id,
	}, nil
}

// List returns every product. An empty store yields an empty array.
func (h *ProductHandler) List(c echo.Context, _ *ListProductsRequest) ([]ProductResponse, error) {
	products, err := h.product.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	return shapeProducts(products), nil
}

// Update applies a partial patch to one product.
func (h *ProductHandler) Update(c echo.Context, req *UpdateProductRequest) (*MessageResponse, error) {
	input := service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if req.Price != nil {
		price := req.Price.Float64()
		input.Price = &price
	}
	if req.Stock != nil {
		stock := req.Stock.Int()
		input.Stock = &stock
	}

	if err := h.product.Update(c.Request().Context(), req.ID, input); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Product updated successfully"}, nil
}

// Delete removes one product by id.
func (h *ProductHandler) Delete(c echo.Context, req *DeleteProductRequest) (*MessageResponse, error) {
	if err := h.product.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Product deleted successfully"}, nil
}

func shapeProducts(products []model.Product) []ProductResponse {
	shaped := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		shaped = append(shaped, ProductResponse{
			ID:          p.ID.Hex(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			Category:    p.Category,
			ImageURL:    p.ImageURL,
		})
	}
	return shaped
}
