package controllers

import (
	"net/http"

	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/pkg/bind"
	"github.com/lunarosa/shop/pkg/response"
)

// CartController exposes the shopper's cart.
type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// Show returns the cart as a receipt: lines with unit prices, per-line
// subtotals, and the grand total.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	receipt, err := c.cart.Receipt(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, receipt)
}

// Add puts one more unit of a product in the cart.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID int64 `json:"productId" validate:"required"`
	}
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	items, err := c.cart.Add(r.Context(), body.ProductID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, items)
}

// SetQuantity overwrites a line's quantity; zero removes the line.
func (c *CartController) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if _, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := c.cart.SetQuantity(r.Context(), id, body.Quantity)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, items)
}

// Remove drops a product from the cart.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	items, err := c.cart.Remove(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, items)
}
