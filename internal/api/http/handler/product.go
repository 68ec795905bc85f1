package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pricewatch/pricewatch-server/internal/logger"
	"github.com/pricewatch/pricewatch-server/internal/model"
)

// ProductService defines tracked-product operations scoped to an owner.
type ProductService interface {
	Add(ctx context.Context, owner string, params model.AddProductParams) (string, error)
	List(ctx context.Context, owner string) ([]model.Product, error)
	Delete(ctx context.Context, owner string, productID string) error
	UpdatePrice(ctx context.Context, owner string, productID string, newPrice string) error
}

// Product handles HTTP endpoints for tracked products.
type Product struct {
	productService ProductService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(productService ProductService, contextManager model.ContextManager, logger *logger.Logger) *Product {
	return &Product{
		productService: productService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type addProductRequest struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	Vendor        string `json:"vendor"`
	Price         string `json:"price"`
	PreviousPrice string `json:"previousPrice"`
}

type addProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

type productResponse struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	Vendor        string `json:"vendor"`
	Price         string `json:"price"`
	PreviousPrice string `json:"previousPrice"`
}

type listProductsResponse struct {
	Products []productResponse `json:"products"`
}

type updatePriceRequest struct {
	NewPrice string `json:"newPrice"`
}

func (h *Product) owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner, ok := h.contextManager.GetUserEmailFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization token is required.")
		return "", false
	}
	return owner, true
}

// Add stores a new tracked product for the authenticated user.
func (h *Product) Add(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name == "" || req.URL == "" || req.Vendor == "" || req.Price == "" {
		writeMessage(w, http.StatusBadRequest, "Name, url, vendor and price are required.")
		return
	}

	h.logger.Debug("Product handler: processing add product request",
		"owner", owner,
		"name", req.Name)

	id, err := h.productService.Add(r.Context(), owner, model.AddProductParams{
		Name:          req.Name,
		URL:           req.URL,
		Vendor:        req.Vendor,
		Price:         req.Price,
		PreviousPrice: req.PreviousPrice,
	})
	if err != nil {
		h.logger.Error("Product handler: add product failed",
			"owner", owner,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, addProductResponse{
		Message:   "Product added successfully.",
		ProductID: id,
	})
}

// List returns every product tracked by the authenticated user.
func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	products, err := h.productService.List(r.Context(), owner)
	if err != nil {
		h.logger.Error("Product handler: list products failed",
			"owner", owner,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response := listProductsResponse{Products: make([]productResponse, 0, len(products))}
	for _, p := range products {
		response.Products = append(response.Products, productResponse{
			ProductID:     p.ID,
			Name:          p.Name,
			URL:           p.URL,
			Vendor:        p.Vendor,
			Price:         p.Price,
			PreviousPrice: p.PreviousPrice,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// Delete removes one of the authenticated user's products.
func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	productID := chi.URLParam(r, "productID")
	if productID == "" {
		writeMessage(w, http.StatusBadRequest, "Product id is required.")
		return
	}

	if err := h.productService.Delete(r.Context(), owner, productID); err != nil {
		h.logger.Error("Product handler: delete product failed",
			"owner", owner,
			"product_id", productID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Product deleted successfully.")
}

// UpdatePrice records a new price for one of the authenticated user's
// products, keeping the prior value as the previous price.
func (h *Product) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	productID := chi.URLParam(r, "productID")
	if productID == "" {
		writeMessage(w, http.StatusBadRequest, "Product id is required.")
		return
	}

	var req updatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.NewPrice == "" {
		writeMessage(w, http.StatusBadRequest, "New price is required.")
		return
	}

	if err := h.productService.UpdatePrice(r.Context(), owner, productID, req.NewPrice); err != nil {
		h.logger.Error("Product handler: update price failed",
			"owner", owner,
			"product_id", productID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Product price updated successfully.")
}
