package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
	"github.com/iudanet/marketsync/internal/validation"
	"github.com/iudanet/marketsync/pkg/api"
)

const maxProductNameLen = 200

// ShopHandler обслуживает каталог, корзину и промокоды
type ShopHandler struct {
	responder
	products storage.ProductStorage
	carts    storage.CartStorage
	vouchers storage.VoucherStorage
	clock    clockwork.Clock
}

// NewShopHandler создает handler магазина
func NewShopHandler(logger *slog.Logger, products storage.ProductStorage, carts storage.CartStorage, vouchers storage.VoucherStorage, clock clockwork.Clock) *ShopHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ShopHandler{
		responder: responder{logger: logger},
		products:  products,
		carts:     carts,
		vouchers:  vouchers,
		clock:     clock,
	}
}

// ListProducts обрабатывает GET /products. С параметром ids=a,b возвращает
// только найденные товары из списка.
func (h *ShopHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		products []models.Product
		err      error
	)
	if raw := r.URL.Query().Get("ids"); raw != "" {
		products, err = h.products.GetProducts(ctx, splitIDs(raw))
	} else {
		products, err = h.products.ListProducts(ctx)
	}
	if err != nil {
		h.internalError(w, r, "failed to list products", err)
		return
	}

	h.sendJSON(w, products, http.StatusOK)
}

// CreateProduct обрабатывает POST /products (admin)
func (h *ShopHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	h.upsertProduct(w, r, uuid.New().String(), http.StatusCreated)
}

// UpdateProduct обрабатывает PUT /products/{id} (admin)
func (h *ShopHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.products.GetProduct(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.sendError(w, notFound("product", id), http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to get product", err)
		return
	}
	h.upsertProduct(w, r, id, http.StatusOK)
}

func (h *ShopHandler) upsertProduct(w http.ResponseWriter, r *http.Request, id string, status int) {
	var req api.UpsertProductRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateText("name", req.Name, maxProductNameLen); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Price < 0 || req.Stock < 0 {
		h.sendError(w, "price and stock cannot be negative", http.StatusBadRequest)
		return
	}

	p := &models.Product{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Price:     req.Price,
		Stock:     req.Stock,
		UpdatedAt: h.clock.Now(),
	}
	if err := h.products.UpsertProduct(r.Context(), p); err != nil {
		h.internalError(w, r, "failed to save product", err)
		return
	}

	h.logger.InfoContext(r.Context(), "product saved", slog.String("product_id", id), slog.Int("stock", p.Stock))
	h.sendJSON(w, p, status)
}

// ListCart обрабатывает GET /cart
func (h *ShopHandler) ListCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := h.carts.ListCart(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "failed to list cart", err)
		return
	}
	h.sendJSON(w, items, http.StatusOK)
}

// AddCartItem обрабатывает POST /cart. Количество добавляется к уже
// лежащему в корзине.
func (h *ShopHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.AddCartItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateQuantity(req.Quantity); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.sendError(w, notFound("product", req.ProductID), http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to get product", err)
		return
	}

	item := &models.CartItem{ProductID: product.ID, Quantity: req.Quantity, UnitPrice: req.UnitPrice, AddedAt: h.clock.Now()}
	existing, err := h.carts.GetCartItem(ctx, userID, product.ID)
	switch {
	case err == nil:
		item.Quantity += existing.Quantity
		item.AddedAt = existing.AddedAt
		if item.UnitPrice == nil {
			item.UnitPrice = existing.UnitPrice
		}
	case !errors.Is(err, storage.ErrCartItemNotFound):
		h.internalError(w, r, "failed to get cart item", err)
		return
	}

	h.saveCartItem(w, r, userID, product, item, http.StatusCreated)
}

// UpdateCartItem обрабатывает PATCH /cart/{productID}
func (h *ShopHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "productID")

	var req api.UpdateCartItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateQuantity(req.Quantity); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.carts.GetCartItem(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, storage.ErrCartItemNotFound) {
			h.sendError(w, notFound("cart item", productID), http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to get cart item", err)
		return
	}
	item.Quantity = req.Quantity

	h.saveCartItem(w, r, userID, &item.Product, item, http.StatusOK)
}

func (h *ShopHandler) saveCartItem(w http.ResponseWriter, r *http.Request, userID string, product *models.Product, item *models.CartItem, status int) {
	if err := validation.ValidateQuantity(item.Quantity); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.Quantity > product.Stock {
		h.sendError(w, insufficientStock(product), http.StatusConflict)
		return
	}

	if err := h.carts.SaveCartItem(r.Context(), userID, item); err != nil {
		h.internalError(w, r, "failed to save cart item", err)
		return
	}

	item.Product = *product
	h.sendJSON(w, item, status)
}

// RemoveCartItem обрабатывает DELETE /cart/{productID}
func (h *ShopHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "productID")

	if err := h.carts.DeleteCartItem(r.Context(), userID, productID); err != nil {
		if errors.Is(err, storage.ErrCartItemNotFound) {
			h.sendError(w, notFound("cart item", productID), http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to delete cart item", err)
		return
	}
	h.sendJSON(w, nil, http.StatusOK)
}

// ClearCart обрабатывает DELETE /cart
func (h *ShopHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	if err := h.carts.ClearCart(r.Context(), userID); err != nil {
		h.internalError(w, r, "failed to clear cart", err)
		return
	}
	h.sendJSON(w, nil, http.StatusOK)
}

// ValidateVoucher обрабатывает POST /vouchers/validate. Отказ возвращается
// с текстом причины, клиент показывает его как есть.
func (h *ShopHandler) ValidateVoucher(w http.ResponseWriter, r *http.Request) {
	var req api.ValidateVoucherRequest
	if !h.decode(w, r, &req) {
		return
	}

	code := validation.NormalizeVoucherCode(req.Code)
	if err := validation.ValidateVoucherCode(code); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Subtotal < 0 {
		h.sendError(w, "subtotal cannot be negative", http.StatusBadRequest)
		return
	}

	v, discount, ok := h.applyVoucher(w, r, code, req.Subtotal)
	if !ok {
		return
	}
	h.sendJSON(w, api.ValidateVoucherResponse{Voucher: *v, DiscountAmount: discount}, http.StatusOK)
}

// applyVoucher проверяет промокод и при отказе сам пишет ответ
func (h *ShopHandler) applyVoucher(w http.ResponseWriter, r *http.Request, code string, subtotal int64) (*models.Voucher, int64, bool) {
	v, err := h.vouchers.GetVoucher(r.Context(), code)
	if err != nil {
		if errors.Is(err, storage.ErrVoucherNotFound) {
			h.sendError(w, "voucher "+code+" does not exist", http.StatusNotFound)
			return nil, 0, false
		}
		h.internalError(w, r, "failed to get voucher", err)
		return nil, 0, false
	}

	discount, err := v.DiscountFor(subtotal, h.clock.Now())
	if err != nil {
		h.logger.InfoContext(r.Context(), "voucher rejected", slog.String("code", code), slog.Any("reason", err))
		h.sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return nil, 0, false
	}
	return v, discount, true
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func insufficientStock(p *models.Product) string {
	return "insufficient stock for " + p.Name
}
