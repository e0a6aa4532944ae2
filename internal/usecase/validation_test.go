package usecase

import (
	"testing"

	"github.com/bikestores/bikestore/internal/domain/model"
)

func TestValidateCustomerFormAccepted(t *testing.T) {
	form := model.CustomerForm{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", City: "Boston"}
	if vErr := ValidateCustomerForm(form); vErr != nil {
		t.Fatalf("expected no validation error, got %v", vErr)
	}
}

func TestValidateCustomerFormMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		form    model.CustomerForm
		expects []string
	}{
		{
			name:    "all empty",
			form:    model.CustomerForm{},
			expects: []string{"First Name is required.", "Last Name is required.", "Email is required.", "City is required."},
		},
		{
			name:    "whitespace only",
			form:    model.CustomerForm{FirstName: "   ", LastName: "\t", Email: "ann@example.com", City: "Boston"},
			expects: []string{"First Name is required.", "Last Name is required."},
		},
		{
			name:    "missing city",
			form:    model.CustomerForm{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"},
			expects: []string{"City is required."},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vErr := ValidateCustomerForm(tc.form)
			if vErr == nil {
				t.Fatal("expected validation error")
			}
			if len(vErr.Messages) != len(tc.expects) {
				t.Fatalf("expected %d messages, got %v", len(tc.expects), vErr.Messages)
			}
			for i, want := range tc.expects {
				if vErr.Messages[i] != want {
					t.Errorf("message %d: expected %q, got %q", i, want, vErr.Messages[i])
				}
			}
		})
	}
}
