package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/pkg/collection"
	"github.com/lunarosa/shop/pkg/logger"
	"github.com/lunarosa/shop/pkg/money"
)

// CartService mutates the cart under the stock ceilings set by the catalog.
// Stock is checked against the product list at mutation time; checkout does
// its own accounting later.
type CartService struct {
	carts   *repositories.CartRepository
	catalog *repositories.CatalogRepository
}

func NewCartService(carts *repositories.CartRepository, catalog *repositories.CatalogRepository) *CartService {
	return &CartService{carts: carts, catalog: catalog}
}

// Items returns the current cart contents.
func (s *CartService) Items(ctx context.Context) ([]models.CartItem, error) {
	items, err := s.carts.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Step: "load cart", Err: err}
	}
	return items, nil
}

// Add puts one more unit of the product in the cart. A product already in
// the cart has its quantity bumped; a new product enters with quantity 1 and
// a frozen price/discount snapshot. Rejected with ErrOutOfStock when the
// bump would exceed current stock.
func (s *CartService) Add(ctx context.Context, productID int64) ([]models.CartItem, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID != productID {
			continue
		}
		if items[i].Quantity >= product.Stock {
			return nil, ErrOutOfStock
		}
		items[i].Quantity++
		found = true
		break
	}
	if !found {
		if product.Stock < 1 {
			return nil, ErrOutOfStock
		}
		items = append(items, models.CartItem{Product: product, Quantity: 1})
	}

	if err := s.carts.Save(ctx, items); err != nil {
		return nil, &PersistenceError{Step: "save cart", Err: err}
	}
	return items, nil
}

// SetQuantity overwrites the quantity for a product already in the cart.
// A quantity of zero or less is a Remove. Requests beyond current stock are
// rejected with a StockExceededError and the cart is left untouched.
func (s *CartService) SetQuantity(ctx context.Context, productID int64, quantity int) ([]models.CartItem, error) {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, &StockExceededError{ProductID: productID, Requested: quantity, Available: product.Stock}
	}

	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
		}
	}

	if err := s.carts.Save(ctx, items); err != nil {
		return nil, &PersistenceError{Step: "save cart", Err: err}
	}
	return items, nil
}

// Remove drops the product's line from the cart. Removing an absent product
// is a no-op, not an error.
func (s *CartService) Remove(ctx context.Context, productID int64) ([]models.CartItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	kept := collection.Filter(items, func(item models.CartItem) bool {
		return item.ID != productID
	})

	if err := s.carts.Save(ctx, kept); err != nil {
		return nil, &PersistenceError{Step: "save cart", Err: err}
	}
	return kept, nil
}

// Total returns the cart total as an exact decimal: the sum of discounted
// unit price × quantity over every line.
func (s *CartService) Total(ctx context.Context) (decimal.Decimal, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return cartTotal(items), nil
}

// TotalDisplay is Total rendered to 2 decimal places for the storefront.
func (s *CartService) TotalDisplay(ctx context.Context) (string, error) {
	total, err := s.Total(ctx)
	if err != nil {
		return "", err
	}
	return money.Display(total), nil
}

// Receipt returns per-line subtotals with the undiscounted price alongside,
// plus the grand total, for the cart summary view.
func (s *CartService) Receipt(ctx context.Context) (*Receipt, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	lines := collection.Map(items, func(item models.CartItem) ReceiptLine {
		return ReceiptLine{
			ProductID:    item.ID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			Unit:         money.Display(money.DiscountedUnit(item.Price, item.Discount)),
			Subtotal:     money.Display(money.LineSubtotal(item.Price, item.Discount, item.Quantity)),
			Undiscounted: money.Display(money.UndiscountedLine(item.Price, item.Quantity)),
		}
	})

	return &Receipt{Lines: lines, Total: money.Display(cartTotal(items))}, nil
}

// Receipt is the cart rendered for display, every amount a fixed string.
type Receipt struct {
	Lines []ReceiptLine `json:"lines"`
	Total string        `json:"total"`
}

type ReceiptLine struct {
	ProductID    int64  `json:"productId"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	Subtotal     string `json:"subtotal"`
	Undiscounted string `json:"undiscounted"`
}

func cartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(money.LineSubtotal(item.Price, item.Discount, item.Quantity))
	}
	return total
}

func (s *CartService) findProduct(ctx context.Context, productID int64) (models.Product, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return models.Product{}, &PersistenceError{Step: "load products", Err: err}
	}

	product, ok := collection.First(products, func(p models.Product) bool {
		return p.ID == productID
	})
	if !ok {
		logger.Debug("cart: unknown product", "product_id", productID)
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}
