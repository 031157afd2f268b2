package validate_test

import (
	"testing"

	"github.com/lunarosa/shop/pkg/validate"
)

type checkoutInput struct {
	Name          string `json:"name"          validate:"required,min=2,max=120"`
	Phone         string `json:"phone"         validate:"required,min=7,max=20"`
	Address       string `json:"address"       validate:"required"`
	Email         string `json:"email"         validate:"nullable,email"`
	PaymentMethod string `json:"paymentMethod" validate:"required,in=cash-on-delivery,bank-transfer"`
	Notes         string `json:"notes"         validate:"nullable,max=500"`
}

func TestValidCheckoutInput(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Name:          "Ana María",
		Phone:         "3001234567",
		Address:       "Calle 10 #4-32",
		Email:         "", // nullable — allowed to be empty
		PaymentMethod: "cash-on-delivery",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(checkoutInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	for _, field := range []string{"name", "phone", "address"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestInRuleRejectsUnknownPaymentMethod(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Name:          "Ana",
		Phone:         "3001234567",
		Address:       "Calle 10",
		PaymentMethod: "crypto",
	})
	if _, ok := errs["paymentMethod"]; !ok {
		t.Error("expected unknown payment method to fail")
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Discount int `json:"discount" validate:"between=0,100"`
	}
	if errs := validate.Struct(in{Discount: 150}); !validate.HasErrors(errs) {
		t.Error("expected discount > 100 to fail")
	}
	if errs := validate.Struct(in{Discount: 20}); validate.HasErrors(errs) {
		t.Errorf("expected discount 20 to pass, got: %v", errs)
	}
}

func TestGteOnPrice(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,numeric,gte=0"`
	}
	if errs := validate.Struct(in{Price: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail")
	}
	if errs := validate.Struct(in{Price: 9.99}); validate.HasErrors(errs) {
		t.Errorf("expected positive price to pass, got: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Image string `json:"image" validate:"nullable,url"`
	}
	if errs := validate.Struct(in{Image: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Image: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestMultiValueInSplitting(t *testing.T) {
	type in struct {
		Method string `json:"method" validate:"required,in=cash-on-delivery,bank-transfer,max=30"`
	}
	if errs := validate.Struct(in{Method: "bank-transfer"}); validate.HasErrors(errs) {
		t.Errorf("expected bank-transfer to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Method: "barter"}); !validate.HasErrors(errs) {
		t.Error("expected barter to fail the in rule")
	}
}
