package models

// Product is one catalog entry. Products live as a JSON sequence under the
// products key in the store; they have no database identity of their own.
// Identifiers are millisecond timestamps assigned when the admin creates the
// product, which keeps them unique and stable for a single-admin shop.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"         validate:"required,min=2,max=120"`
	Price        float64 `json:"price"        validate:"gte=0"`
	Stock        int     `json:"stock"        validate:"gte=0"`
	Category     string  `json:"category"     validate:"required,max=80"`
	Discount     int     `json:"discount"     validate:"between=0,100"`
	Description  string  `json:"description"  validate:"nullable,max=2000"`
	Image        string  `json:"image"        validate:"nullable"`
	IsBestSeller bool    `json:"isBestSeller"`
}

// InStock reports whether the product has sellable units left.
func (p Product) InStock() bool { return p.Stock > 0 }

// Banner is a promotional slide shown on the storefront carousel.
type Banner struct {
	ID       int64  `json:"id"`
	Image    string `json:"image"    validate:"required"`
	Title    string `json:"title"    validate:"nullable,max=160"`
	Subtitle string `json:"subtitle" validate:"nullable,max=240"`
}
