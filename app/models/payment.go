package models

// PaymentInfo holds the shop's bank-transfer details, shown to the shopper
// when an order is paid by transfer. Field names keep the Spanish the shop's
// admin already uses (Bancolombia account plus Nequi/Daviplata mobile
// aliases); the JSON shape is part of the persisted schema.
type PaymentInfo struct {
	Banco        string `json:"banco"        validate:"nullable,max=120"`
	TipoCuenta   string `json:"tipoCuenta"   validate:"nullable,max=60"`
	NumeroCuenta string `json:"numeroCuenta" validate:"nullable,max=60"`
	Titular      string `json:"titular"      validate:"nullable,max=120"`
	Nequi        string `json:"nequi"        validate:"nullable,max=30"`
	Daviplata    string `json:"daviplata"    validate:"nullable,max=30"`
}

// HasBankAccount reports whether a full bank block should appear in payment
// instructions. The original shop only prints the bank lines when an account
// number is configured.
func (p PaymentInfo) HasBankAccount() bool { return p.NumeroCuenta != "" }
