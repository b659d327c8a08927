package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/events"
)

// AdminCredentials is the fixed credential pair gating the admin
// panel. The gate is presentational, not a security boundary: there is
// no user table and no server-side authority behind it. PasswordHash
// (bcrypt) takes precedence over the plain password when set.
type AdminCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// AdminService handles the admin panel: the login gate, catalog
// editing and the sales ledger views.
type AdminService struct {
	catalogStore core.CatalogStore
	ledger       core.SalesLedger
	eventBus     *events.EventBus
	credentials  AdminCredentials
	jwtSecret    string
	log          *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(
	catalogStore core.CatalogStore,
	ledger core.SalesLedger,
	eventBus *events.EventBus,
	credentials AdminCredentials,
	jwtSecret string,
	log *zap.Logger,
) *AdminService {
	return &AdminService{
		catalogStore: catalogStore,
		ledger:       ledger,
		eventBus:     eventBus,
		credentials:  credentials,
		jwtSecret:    jwtSecret,
		log:          log,
	}
}

// Login checks the fixed credentials and returns a session token.
func (s *AdminService) Login(username, password string) (string, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.credentials.Username)) == 1

	var passwordOK bool
	if s.credentials.PasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(s.credentials.PasswordHash), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.credentials.Password)) == 1
	}

	if !usernameOK || !passwordOK {
		return "", fmt.Errorf("invalid username or password")
	}

	return s.generateJWT(username)
}

// generateJWT generates a JWT token for the admin session
func (s *AdminService) generateJWT(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     "ADMIN",
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(), // 7 days
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateJWT validates a JWT token and returns the claims
func (s *AdminService) ValidateJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Catalog returns the current menu configuration.
func (s *AdminService) Catalog(ctx context.Context) core.CatalogConfig {
	return s.catalogStore.Load(ctx)
}

// SaveCatalog overwrites the whole menu document with the supplied
// configuration and emits a catalog event.
func (s *AdminService) SaveCatalog(ctx context.Context, cfg core.CatalogConfig) error {
	if err := s.catalogStore.Save(ctx, cfg); err != nil {
		return err
	}
	s.eventBus.PublishCatalogUpdated()
	s.log.Info("catalog saved",
		zap.Int("sizes", len(cfg.Sizes)),
		zap.Int("toppings", len(cfg.Toppings)))
	return nil
}

// ResetCatalog restores the fixed default menu.
func (s *AdminService) ResetCatalog(ctx context.Context) (core.CatalogConfig, error) {
	cfg, err := s.catalogStore.ResetToDefault(ctx)
	if err != nil {
		return core.CatalogConfig{}, err
	}
	s.eventBus.PublishCatalogUpdated()
	s.log.Info("catalog reset to defaults")
	return cfg, nil
}

// UpsertSize adds or replaces one size entry, rewriting the whole
// document.
func (s *AdminService) UpsertSize(ctx context.Context, size int, option core.SizeOption) error {
	if size <= 0 {
		return core.NewValidationError("size must be a positive weight in grams")
	}
	if option.Price < 0 {
		return core.NewValidationError("size price must not be negative")
	}

	cfg := s.catalogStore.Load(ctx)
	cfg.Sizes[size] = option
	return s.SaveCatalog(ctx, cfg)
}

// DeleteSize removes one size entry, a no-op when absent. Cart items
// referencing it keep their snapshot.
func (s *AdminService) DeleteSize(ctx context.Context, size int) error {
	cfg := s.catalogStore.Load(ctx)
	if _, ok := cfg.Sizes[size]; !ok {
		return nil
	}
	delete(cfg.Sizes, size)
	return s.SaveCatalog(ctx, cfg)
}

// UpsertTopping adds or replaces one topping entry, rewriting the
// whole document.
func (s *AdminService) UpsertTopping(ctx context.Context, name string, option core.ToppingOption) error {
	if name == "" {
		return core.NewValidationError("topping name is required")
	}
	if option.Price250 < 0 || option.Price500 < 0 {
		return core.NewValidationError("topping prices must not be negative")
	}

	cfg := s.catalogStore.Load(ctx)
	cfg.Toppings[name] = option
	return s.SaveCatalog(ctx, cfg)
}

// DeleteTopping removes one topping entry, a no-op when absent.
func (s *AdminService) DeleteTopping(ctx context.Context, name string) error {
	cfg := s.catalogStore.Load(ctx)
	if _, ok := cfg.Toppings[name]; !ok {
		return nil
	}
	delete(cfg.Toppings, name)
	return s.SaveCatalog(ctx, cfg)
}

// Sales returns the ledger filtered by month/year, order preserved.
func (s *AdminService) Sales(ctx context.Context, filter core.SaleFilter) []core.SaleRecord {
	return core.FilterSales(s.ledger.List(ctx), filter)
}

// SalesSummary aggregates the filtered ledger.
func (s *AdminService) SalesSummary(ctx context.Context, filter core.SaleFilter) core.SalesSummary {
	return core.AggregateSales(s.Sales(ctx, filter))
}

// DeleteSale removes a ledger record by order id. Destructive and
// unconfirmed here; the admin UI asks first.
func (s *AdminService) DeleteSale(ctx context.Context, orderID string) error {
	if err := s.ledger.DeleteByOrderID(ctx, orderID); err != nil {
		return err
	}
	s.eventBus.PublishSaleDeleted(orderID)
	s.log.Info("sale record deleted", zap.String("order_id", orderID))
	return nil
}

// EventBus returns the event bus for SSE subscriptions
func (s *AdminService) EventBus() *events.EventBus {
	return s.eventBus
}
