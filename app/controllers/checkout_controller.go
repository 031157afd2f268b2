package controllers

import (
	"net/http"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/pkg/bind"
	"github.com/lunarosa/shop/pkg/response"
)

// CheckoutController handles order placement.
type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// Submit validates the contact form and places the order. The checkout
// service runs its own validation so the semantics stay the same for non-HTTP
// callers; bind here only rejects malformed JSON early.
func (c *CheckoutController) Submit(w http.ResponseWriter, r *http.Request) {
	var draft models.OrderDraft
	if errs, err := bind.JSON(r, &draft); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	confirmation, err := c.checkout.Checkout(r.Context(), draft)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Created(w, confirmation)
}
