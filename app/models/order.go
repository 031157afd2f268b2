package models

// Payment methods a shopper may pick at checkout.
const (
	PaymentCashOnDelivery = "cash-on-delivery"
	PaymentBankTransfer   = "bank-transfer"
)

// StatusPending is the only status this core assigns. Later transitions
// (confirmed, shipped, ...) happen outside the checkout flow.
const StatusPending = "pending"

// OrderDraft is the mutable checkout form. Required fields are enforced only
// when the shopper submits; an empty draft is a valid resting state.
type OrderDraft struct {
	Name          string `json:"name"          validate:"required,min=2,max=120"`
	Phone         string `json:"phone"         validate:"required,min=7,max=30"`
	Email         string `json:"email"         validate:"nullable,email"`
	Address       string `json:"address"       validate:"required,min=5,max=300"`
	PaymentMethod string `json:"paymentMethod" validate:"required,in=cash-on-delivery,bank-transfer"`
	Notes         string `json:"notes"         validate:"nullable,max=1000"`
}

// Order is an immutable record of a completed checkout: the contact draft,
// the cart snapshot, and the total as charged. Appended to the order log and
// never mutated afterwards.
type Order struct {
	ID       int64      `json:"id"`
	Date     string     `json:"date"` // RFC 3339, UTC
	Customer OrderDraft `json:"customer"`
	Items    []CartItem `json:"items"`
	Total    string     `json:"total"` // fixed 2-decimal string, e.g. "24.00"
	Status   string     `json:"status"`
}
