package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/config"
	"github.com/lunarosa/shop/pkg/event"
	"github.com/lunarosa/shop/pkg/logger"
	"github.com/lunarosa/shop/pkg/metrics"
	"github.com/lunarosa/shop/pkg/money"
	"github.com/lunarosa/shop/pkg/validate"
)

// lowStockThreshold: a stock decrement that lands at or below this fires a
// ProductLowStock event for the admin feed.
const lowStockThreshold = 3

// CheckoutService turns a cart plus a contact form into a recorded order.
//
// The sequence is write order log, decrement stock, clear cart — three
// independent keys with no transaction across them. A failure mid-sequence
// surfaces to the caller and leaves the earlier writes in place; there is no
// rollback. Stock is not re-checked at checkout time unless
// CHECKOUT_RECHECK_STOCK is enabled, so two checkouts drawn from a stale
// product list can overdraw stock. Both behaviors are kept from the original
// shop on purpose; the recheck flag is the opt-in strengthening.
type CheckoutService struct {
	cart     *CartService
	carts    *repositories.CartRepository
	catalog  *repositories.CatalogRepository
	orders   *repositories.OrderRepository
	settings *repositories.SettingsRepository

	// Order IDs are millisecond timestamps; the guard keeps them strictly
	// increasing when two checkouts land within the same millisecond.
	idMu   sync.Mutex
	lastID int64
}

func NewCheckoutService(
	cart *CartService,
	carts *repositories.CartRepository,
	catalog *repositories.CatalogRepository,
	orders *repositories.OrderRepository,
	settings *repositories.SettingsRepository,
) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		carts:    carts,
		catalog:  catalog,
		orders:   orders,
		settings: settings,
	}
}

// Confirmation is what the shopper sees after a successful checkout.
type Confirmation struct {
	OrderID      int64  `json:"orderId"`
	Total        string `json:"total"`
	Method       string `json:"method"`
	Instructions string `json:"instructions"`
}

// Checkout validates the draft, records the order, decrements stock, clears
// the cart, and returns payment instructions.
func (s *CheckoutService) Checkout(ctx context.Context, draft models.OrderDraft) (*Confirmation, error) {
	if errs := validate.Struct(&draft); validate.HasErrors(errs) {
		metrics.CheckoutFailures.WithLabelValues("validation").Inc()
		return nil, &ValidationError{Fields: errs}
	}

	items, err := s.cart.Items(ctx)
	if err != nil {
		metrics.CheckoutFailures.WithLabelValues("persistence").Inc()
		return nil, err
	}
	if len(items) == 0 {
		metrics.CheckoutFailures.WithLabelValues("validation").Inc()
		return nil, ErrEmptyCart
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		metrics.CheckoutFailures.WithLabelValues("persistence").Inc()
		return nil, &PersistenceError{Step: "load products", Err: err}
	}

	if config.CheckoutRecheckStock() {
		if err := recheckStock(items, products); err != nil {
			metrics.CheckoutFailures.WithLabelValues("stock").Inc()
			return nil, err
		}
	}

	total := cartTotal(items)
	order := models.Order{
		ID:       s.nextID(),
		Date:     time.Now().UTC().Format(time.RFC3339),
		Customer: draft,
		Items:    items,
		Total:    money.Display(total),
		Status:   models.StatusPending,
	}

	// Step 1: append to the order log. A failure here means nothing happened.
	if err := s.orders.Append(ctx, order); err != nil {
		metrics.CheckoutFailures.WithLabelValues("persistence").Inc()
		return nil, &PersistenceError{Step: "append order", Err: err}
	}

	// Step 2: decrement stock. The order is already recorded; a failure here
	// leaves stock untouched and is reported, not rolled back.
	if err := s.decrementStock(ctx, items, products); err != nil {
		metrics.CheckoutFailures.WithLabelValues("persistence").Inc()
		logger.Error("checkout: order recorded but stock update failed",
			"order_id", order.ID, "error", err)
		return nil, err
	}

	// Step 3: clear the cart.
	if err := s.carts.Clear(ctx); err != nil {
		metrics.CheckoutFailures.WithLabelValues("persistence").Inc()
		logger.Error("checkout: order recorded but cart clear failed",
			"order_id", order.ID, "error", err)
		return nil, &PersistenceError{Step: "clear cart", Err: err}
	}

	totalFloat, _ := total.Float64()
	metrics.OrdersPlaced.WithLabelValues(draft.PaymentMethod).Inc()
	metrics.OrderValue.Observe(totalFloat)
	event.FireAsync(event.OrderPlaced, order)

	logger.Info("checkout: order placed",
		"order_id", order.ID, "items", len(items),
		"total", order.Total, "method", draft.PaymentMethod)

	confirmation := &Confirmation{
		OrderID: order.ID,
		Total:   order.Total,
		Method:  draft.PaymentMethod,
	}
	confirmation.Instructions, err = s.instructions(ctx, draft.PaymentMethod, order.Total)
	if err != nil {
		// The order stands; payment details are re-readable from the admin.
		logger.Warn("checkout: could not load payment info", "error", err)
		confirmation.Instructions = fmt.Sprintf("Total a pagar: $%s", order.Total)
	}

	return confirmation, nil
}

// nextID returns a millisecond timestamp, nudged forward if it would collide
// with the previous one.
func (s *CheckoutService) nextID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// recheckStock verifies every cart line against current stock. Only active
// behind the CHECKOUT_RECHECK_STOCK flag.
func recheckStock(items []models.CartItem, products []models.Product) error {
	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, item := range items {
		p, ok := byID[item.ID]
		if !ok {
			return ErrProductNotFound
		}
		if item.Quantity > p.Stock {
			return &StockExceededError{ProductID: item.ID, Requested: item.Quantity, Available: p.Stock}
		}
	}
	return nil
}

func (s *CheckoutService) decrementStock(ctx context.Context, items []models.CartItem, products []models.Product) error {
	quantities := make(map[int64]int, len(items))
	for _, item := range items {
		quantities[item.ID] = item.Quantity
	}

	for i := range products {
		qty, ok := quantities[products[i].ID]
		if !ok {
			continue
		}
		products[i].Stock -= qty
		if products[i].Stock <= lowStockThreshold {
			event.FireAsync(event.ProductLowStock, products[i])
		}
	}

	if err := s.catalog.SaveProducts(ctx, products); err != nil {
		return &PersistenceError{Step: "save products", Err: err}
	}
	return nil
}

// instructions builds the payment message shown after checkout. Transfer
// orders get the bank block (when an account is configured) plus any mobile
// aliases; cash orders get a plain on-delivery note.
func (s *CheckoutService) instructions(ctx context.Context, method, total string) (string, error) {
	if method != models.PaymentBankTransfer {
		return fmt.Sprintf(
			"Pago contra entrega: $%s\n\nTe contactaremos pronto para coordinar la entrega.",
			total), nil
	}

	info, err := s.settings.PaymentInfo(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("INFORMACIÓN DE PAGO:\n\n")
	if info.HasBankAccount() {
		fmt.Fprintf(&b, "%s\n", info.Banco)
		fmt.Fprintf(&b, "Tipo: %s\n", info.TipoCuenta)
		fmt.Fprintf(&b, "Cuenta: %s\n", info.NumeroCuenta)
		fmt.Fprintf(&b, "Titular: %s\n\n", info.Titular)
	}
	if info.Nequi != "" {
		fmt.Fprintf(&b, "Nequi: %s\n", info.Nequi)
	}
	if info.Daviplata != "" {
		fmt.Fprintf(&b, "Daviplata: %s\n", info.Daviplata)
	}
	fmt.Fprintf(&b, "\nTotal a pagar: $%s\n\n", total)
	b.WriteString("Por favor realiza la transferencia y envíanos el comprobante.")

	return b.String(), nil
}
