package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/eggstore/pkg/validate"
)

type orderInput struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	Quantity     int    `json:"quantity"      validate:"required,gte=1"`
	Method       string `json:"method"        validate:"nullable,in=card,cod"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(&orderInput{
		CustomerName: "Ada",
		Email:        "ada@example.com",
		Quantity:     2,
		Method:       "cod",
	})
	if validate.HasErrors(errs) {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStructRequired(t *testing.T) {
	errs := validate.Struct(&orderInput{Email: "ada@example.com", Quantity: 1})
	if errs["customer_name"] == "" {
		t.Errorf("expected required error for customer_name, got %v", errs)
	}
}

func TestStructEmail(t *testing.T) {
	errs := validate.Struct(&orderInput{CustomerName: "Ada", Email: "nope", Quantity: 1})
	if errs["email"] == "" {
		t.Errorf("expected email error, got %v", errs)
	}
}

func TestStructGte(t *testing.T) {
	errs := validate.Struct(&orderInput{CustomerName: "Ada", Email: "a@b.co", Quantity: -1})
	if errs["quantity"] == "" {
		t.Errorf("expected gte error for quantity, got %v", errs)
	}
}

func TestStructIn(t *testing.T) {
	errs := validate.Struct(&orderInput{
		CustomerName: "Ada",
		Email:        "a@b.co",
		Quantity:     1,
		Method:       "bitcoin",
	})
	if errs["method"] == "" {
		t.Errorf("expected in error for method, got %v", errs)
	}
}

func TestStructNullableSkips(t *testing.T) {
	errs := validate.Struct(&orderInput{CustomerName: "Ada", Email: "a@b.co", Quantity: 1})
	if errs["method"] != "" {
		t.Errorf("nullable empty field must skip rules, got %q", errs["method"])
	}
}

func TestFirstIsStable(t *testing.T) {
	errs := map[string]string{"b": "B failed.", "a": "A failed."}
	if got := validate.First(errs); got != "A failed." {
		t.Errorf("expected lexicographically first message, got %q", got)
	}
	if validate.First(nil) != "" {
		t.Error("First(nil) must be empty")
	}
}
