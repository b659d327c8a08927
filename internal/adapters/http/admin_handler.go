package http

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/events"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/service"
)

// AdminHandler serves the admin panel API: the login gate, catalog
// editing, the sales ledger and the live event stream.
type AdminHandler struct {
	adminService *service.AdminService
	secureCookie bool
}

// NewAdminHandler creates a new admin handler. secureCookie should be
// true in production so the auth cookie is HTTPS-only.
func NewAdminHandler(adminService *service.AdminService, secureCookie bool) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		secureCookie: secureCookie,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/auth/login
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	token, err := h.adminService.Login(req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid username or password",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"token":    token,
		"username": req.Username,
	})
}

// Logout handles POST /api/admin/auth/logout
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"message": "logged out"})
}

// Me handles GET /api/admin/auth/me
func (h *AdminHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"username": c.Locals("username"),
		"role":     c.Locals("role"),
	})
}

// GetCatalog handles GET /api/admin/catalog
func (h *AdminHandler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(h.adminService.Catalog(c.Context()))
}

// SaveCatalog handles PUT /api/admin/catalog
func (h *AdminHandler) SaveCatalog(c *fiber.Ctx) error {
	var cfg core.CatalogConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.adminService.SaveCatalog(c.Context(), cfg); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cfg)
}

// ResetCatalog handles POST /api/admin/catalog/reset
func (h *AdminHandler) ResetCatalog(c *fiber.Ctx) error {
	cfg, err := h.adminService.ResetCatalog(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cfg)
}

// UpsertSize handles PUT /api/admin/catalog/sizes/:size
func (h *AdminHandler) UpsertSize(c *fiber.Ctx) error {
	size, err := strconv.Atoi(c.Params("size"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "size must be a weight in grams",
		})
	}

	var option core.SizeOption
	if err := c.BodyParser(&option); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.adminService.UpsertSize(c.Context(), size, option); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(h.adminService.Catalog(c.Context()))
}

// DeleteSize handles DELETE /api/admin/catalog/sizes/:size
func (h *AdminHandler) DeleteSize(c *fiber.Ctx) error {
	size, err := strconv.Atoi(c.Params("size"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "size must be a weight in grams",
		})
	}

	if err := h.adminService.DeleteSize(c.Context(), size); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpsertTopping handles PUT /api/admin/catalog/toppings/:name
func (h *AdminHandler) UpsertTopping(c *fiber.Ctx) error {
	name, err := decodeParam(c, "name")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid topping name",
		})
	}

	var option core.ToppingOption
	if err := c.BodyParser(&option); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.adminService.UpsertTopping(c.Context(), name, option); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(h.adminService.Catalog(c.Context()))
}

// DeleteTopping handles DELETE /api/admin/catalog/toppings/:name
func (h *AdminHandler) DeleteTopping(c *fiber.Ctx) error {
	name, err := decodeParam(c, "name")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid topping name",
		})
	}

	if err := h.adminService.DeleteTopping(c.Context(), name); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSales handles GET /api/admin/sales?month=&year=
func (h *AdminHandler) ListSales(c *fiber.Ctx) error {
	filter, err := parseSaleFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	records := h.adminService.Sales(c.Context(), filter)
	return c.JSON(fiber.Map{
		"sales":   records,
		"summary": core.AggregateSales(records),
	})
}

// SalesSummary handles GET /api/admin/sales/summary
func (h *AdminHandler) SalesSummary(c *fiber.Ctx) error {
	filter, err := parseSaleFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(h.adminService.SalesSummary(c.Context(), filter))
}

// DeleteSale handles DELETE /api/admin/sales/:orderId
func (h *AdminHandler) DeleteSale(c *fiber.Ctx) error {
	if err := h.adminService.DeleteSale(c.Context(), c.Params("orderId")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SalesReport handles GET /api/admin/sales/report
func (h *AdminHandler) SalesReport(c *fiber.Ctx) error {
	filter, err := parseSaleFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	pdfBytes, filename, err := h.adminService.GenerateSalesReportPDF(c.Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// StreamEvents handles GET /api/admin/events as an SSE stream.
func (h *AdminHandler) StreamEvents(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	subscriberID := uuid.New().String()
	eventChan := h.adminService.EventBus().Subscribe(context.Background(), subscriberID)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer h.adminService.EventBus().Unsubscribe(subscriberID)

		fmt.Fprintf(w, "event: connected\ndata: {\"subscriber_id\": \"%s\"}\n\n", subscriberID)
		if err := w.Flush(); err != nil {
			return
		}

		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case event, ok := <-eventChan:
				if !ok {
					return
				}
				sseData, err := events.FormatSSE(event)
				if err != nil {
					continue
				}
				fmt.Fprint(w, sseData)
				if err := w.Flush(); err != nil {
					return
				}
			case <-ticker.C:
				fmt.Fprint(w, ": heartbeat\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

func parseSaleFilter(c *fiber.Ctx) (core.SaleFilter, error) {
	var filter core.SaleFilter

	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return filter, fmt.Errorf("month must be between 1 and 12")
		}
		filter.Month = month
	}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 0 {
			return filter, fmt.Errorf("year must be a calendar year")
		}
		filter.Year = year
	}

	return filter, nil
}

// decodeParam returns a percent-decoded route parameter, needed for
// topping names containing spaces.
func decodeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
