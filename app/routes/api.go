// Package routes mounts every HTTP endpoint of the shop.
package routes

import (
	"time"

	"github.com/lunarosa/shop/app/controllers"
	appgraphql "github.com/lunarosa/shop/app/graphql"
	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/pkg/logger"
	"github.com/lunarosa/shop/pkg/metrics"
	"github.com/lunarosa/shop/pkg/middleware"
	"github.com/lunarosa/shop/pkg/router"
	"github.com/lunarosa/shop/pkg/ws"
)

// Deps is everything the route table needs, wired once at boot.
type Deps struct {
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Orders   *repositories.OrderRepository
	Settings *repositories.SettingsRepository
	OrderHub *ws.Hub
}

// RegisterAPI mounts the public storefront, the admin panel, the GraphQL
// read API, the live order feed, and the metrics endpoint.
func RegisterAPI(r *router.Router, deps Deps) {
	catalogController := controllers.NewCatalogController(deps.Catalog)
	cartController := controllers.NewCartController(deps.Cart)
	checkoutController := controllers.NewCheckoutController(deps.Checkout)
	adminController := controllers.NewAdminController(deps.Catalog, deps.Orders, deps.Settings)

	api := r.Group("/api")

	// ─── Public storefront ────────────────────────────────────────────────

	api.Get("/products", "catalog.index", catalogController.Index)
	api.Get("/categories", "catalog.categories", catalogController.Categories)
	api.Get("/banners", "catalog.banners", catalogController.Banners)
	api.Get("/favorites", "catalog.favorites", catalogController.Favorites)
	api.Post("/favorites/{id}", "catalog.favorites.toggle", catalogController.ToggleFavorite)

	api.Get("/cart", "cart.show", cartController.Show)
	api.Post("/cart", "cart.add", cartController.Add)
	api.Put("/cart/{id}", "cart.quantity", cartController.SetQuantity)
	api.Delete("/cart/{id}", "cart.remove", cartController.Remove)

	api.Post("/checkout", "checkout.submit", checkoutController.Submit,
		middleware.RateLimit(10, time.Minute))

	// ─── Admin panel ──────────────────────────────────────────────────────

	api.Post("/admin/login", "admin.login", adminController.Login,
		middleware.RateLimit(5, time.Minute))

	admin := api.Group("/admin", middleware.AdminAuth)
	admin.Get("/products", "admin.products", adminController.Products)
	admin.Post("/products", "admin.products.create", adminController.CreateProduct)
	admin.Put("/products/{id}", "admin.products.update", adminController.UpdateProduct)
	admin.Delete("/products/{id}", "admin.products.delete", adminController.DeleteProduct)
	admin.Post("/banners", "admin.banners.create", adminController.CreateBanner)
	admin.Delete("/banners/{id}", "admin.banners.delete", adminController.DeleteBanner)
	admin.Get("/orders", "admin.orders", adminController.Orders)
	admin.Get("/payment-info", "admin.payment.show", adminController.PaymentInfo)
	admin.Put("/payment-info", "admin.payment.save", adminController.SavePaymentInfo)

	// ─── GraphQL read API (admin-guarded, same data as the panel) ─────────

	schema, err := appgraphql.NewSchema(deps.Catalog, deps.Orders)
	if err != nil {
		logger.Error("graphql: schema build failed", "error", err)
	} else {
		admin.Post("/graphql", "admin.graphql", appgraphql.Handler(schema))
	}

	// ─── Live order feed ──────────────────────────────────────────────────

	admin.Get("/ws/orders", "admin.orders.feed", deps.OrderHub.Upgrade)

	// ─── Operational ──────────────────────────────────────────────────────

	r.Get("/metrics", "metrics", metrics.Handler())
}
