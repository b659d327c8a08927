package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/service"
)

// StorefrontHandler serves the customer-facing API: the catalog, the
// cart and the checkout flow.
type StorefrontHandler struct {
	catalogStore    core.CatalogStore
	cartService     *service.CartService
	checkoutService *service.CheckoutService
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(
	catalogStore core.CatalogStore,
	cartService *service.CartService,
	checkoutService *service.CheckoutService,
) *StorefrontHandler {
	return &StorefrontHandler{
		catalogStore:    catalogStore,
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// GetCatalog handles GET /api/catalog
func (h *StorefrontHandler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(h.catalogStore.Load(c.Context()))
}

// GetCart handles GET /api/cart
func (h *StorefrontHandler) GetCart(c *fiber.Ctx) error {
	items := h.cartService.Items(c.Context())
	return c.JSON(fiber.Map{
		"items": items,
		"total": core.GrandTotal(items),
	})
}

type addItemRequest struct {
	Size     int      `json:"size"`
	Toppings []string `json:"toppings"`
	Quantity int      `json:"quantity"`
}

// AddCartItem handles POST /api/cart/items
func (h *StorefrontHandler) AddCartItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	item, err := h.cartService.AddItem(c.Context(), req.Size, req.Toppings, req.Quantity)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem handles PATCH /api/cart/items/:id
func (h *StorefrontHandler) UpdateCartItem(c *fiber.Ctx) error {
	var req setQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.cartService.SetQuantity(c.Context(), c.Params("id"), req.Quantity); err != nil {
		return errorResponse(c, err)
	}

	items := h.cartService.Items(c.Context())
	return c.JSON(fiber.Map{
		"items": items,
		"total": core.GrandTotal(items),
	})
}

// RemoveCartItem handles DELETE /api/cart/items/:id
func (h *StorefrontHandler) RemoveCartItem(c *fiber.Ctx) error {
	if err := h.cartService.RemoveItem(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearCart handles DELETE /api/cart
func (h *StorefrontHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.cartService.Clear(c.Context()); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DraftCheckout handles POST /api/checkout/draft
func (h *StorefrontHandler) DraftCheckout(c *fiber.Ctx) error {
	draft, err := h.checkoutService.PrepareOrder(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(draft)
}

type finalizeRequest struct {
	OrderID  string            `json:"orderId"`
	Customer core.CustomerInfo `json:"customer"`
}

// FinalizeCheckout handles POST /api/checkout/finalize
func (h *StorefrontHandler) FinalizeCheckout(c *fiber.Ctx) error {
	var req finalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	record, handoff, err := h.checkoutService.Finalize(c.Context(), req.OrderID, req.Customer)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":   record,
		"handoff": handoff,
	})
}

// errorResponse maps a service error to an HTTP status. Validation
// failures are the caller's fault; everything else is a store failure.
func errorResponse(c *fiber.Ctx, err error) error {
	if core.IsValidation(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
