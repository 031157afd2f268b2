package controllers

import (
	"net/http"

	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/config"
	"github.com/lunarosa/shop/pkg/auth"
	"github.com/lunarosa/shop/pkg/bind"
	"github.com/lunarosa/shop/pkg/logger"
	"github.com/lunarosa/shop/pkg/response"
)

// AdminController is the shop owner's panel: catalog CRUD, banner management,
// the order log, and payment configuration. Everything except Login sits
// behind the admin JWT guard.
type AdminController struct {
	catalog  *services.CatalogService
	orders   *repositories.OrderRepository
	settings *repositories.SettingsRepository
}

func NewAdminController(
	catalog *services.CatalogService,
	orders *repositories.OrderRepository,
	settings *repositories.SettingsRepository,
) *AdminController {
	return &AdminController{catalog: catalog, orders: orders, settings: settings}
}

// Login checks the configured admin credentials and issues a token. With no
// ADMIN_PASSWORD_HASH configured, login is disabled outright.
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		User     string `json:"user"     validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	hash := config.AdminPasswordHash()
	if hash == "" || body.User != config.AdminUser() || !auth.CheckPassword(hash, body.Password) {
		logger.WithCtx(r.Context()).Warn("admin: failed login attempt", "user", body.User)
		response.Unauthorized(w)
		return
	}

	token, err := auth.GenerateToken(body.User)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"token": token})
}

// Products lists the full catalog, out-of-stock items included.
func (c *AdminController) Products(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.Products(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, products)
}

// CreateProduct adds a product to the catalog.
func (c *AdminController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if errs, err := bind.JSON(r, &product); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	created, err := c.catalog.CreateProduct(r.Context(), product)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Created(w, created)
}

// UpdateProduct overwrites the product at {id}.
func (c *AdminController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var product models.Product
	if errs, err := bind.JSON(r, &product); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	product.ID = id

	updated, err := c.catalog.UpdateProduct(r.Context(), product)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, updated)
}

// DeleteProduct removes the product at {id}.
func (c *AdminController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := c.catalog.DeleteProduct(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, nil)
}

// CreateBanner adds a promotional slide.
func (c *AdminController) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var banner models.Banner
	if errs, err := bind.JSON(r, &banner); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	created, err := c.catalog.CreateBanner(r.Context(), banner)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Created(w, created)
}

// DeleteBanner removes the banner at {id}.
func (c *AdminController) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid banner id")
		return
	}

	if err := c.catalog.DeleteBanner(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, nil)
}

// Orders returns the full order log, oldest first.
func (c *AdminController) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.All(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, orders)
}

// PaymentInfo returns the configured payment details.
func (c *AdminController) PaymentInfo(w http.ResponseWriter, r *http.Request) {
	info, err := c.settings.PaymentInfo(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, info)
}

// SavePaymentInfo replaces the payment details shown on transfer orders.
func (c *AdminController) SavePaymentInfo(w http.ResponseWriter, r *http.Request) {
	var info models.PaymentInfo
	if errs, err := bind.JSON(r, &info); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.settings.SavePaymentInfo(r.Context(), info); err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, info)
}
