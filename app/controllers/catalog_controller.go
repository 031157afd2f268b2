package controllers

import (
	"net/http"

	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/pkg/response"
)

// CatalogController serves the public storefront: product browsing,
// categories, banners, and favorites.
type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// Index lists in-stock products, filtered by ?search= and ?category=.
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.Browse(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("category"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, products)
}

// Categories lists the distinct product categories.
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalog.Categories(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, categories)
}

// Banners lists the promotional slides.
func (c *CatalogController) Banners(w http.ResponseWriter, r *http.Request) {
	banners, err := c.catalog.Banners(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, banners)
}

// Favorites lists the favorited product IDs.
func (c *CatalogController) Favorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := c.catalog.Favorites(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, favorites)
}

// ToggleFavorite flips a product in or out of the favorites set.
func (c *CatalogController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	favorites, err := c.catalog.ToggleFavorite(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, favorites)
}
