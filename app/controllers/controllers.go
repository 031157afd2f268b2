// Package controllers translates HTTP requests into service calls and
// service results into response envelopes.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/pkg/logger"
	"github.com/lunarosa/shop/pkg/response"
)

// idParam parses the {id} path parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Validation and stock rejections are the shopper's to fix; persistence
// failures are ours and get logged with request context.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		response.ValidationError(w, verr.Fields)
		return
	}

	var stockErr *services.StockExceededError
	if errors.As(err, &stockErr) {
		response.Conflict(w, stockErr.Error())
		return
	}

	switch {
	case errors.Is(err, services.ErrOutOfStock):
		response.Conflict(w, services.ErrOutOfStock.Error())
	case errors.Is(err, services.ErrEmptyCart):
		response.Error(w, http.StatusUnprocessableEntity, services.ErrEmptyCart.Error())
	case errors.Is(err, services.ErrProductNotFound):
		response.NotFound(w)
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "something went wrong, please try again")
	}
}
