package invoice

import (
	"strings"
	"testing"
)

func TestNonEmpty(t *testing.T) {
	if !NonEmpty(" a ") {
		t.Error("NonEmpty(\" a \") = false, want true")
	}
	if NonEmpty("") || NonEmpty("   ") {
		t.Error("blank strings should not be NonEmpty")
	}
}

func TestValidateRequiredFields(t *testing.T) {
	valid := Sample()
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid invoice rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Invoice)
		field  string
	}{
		{"blank company name", func(i *Invoice) { i.Company.Name = " " }, "company.name"},
		{"blank company address", func(i *Invoice) { i.Company.Address = "" }, "company.address"},
		{"blank customer name", func(i *Invoice) { i.Customer.Name = "" }, "customer.name"},
		{"blank customer address", func(i *Invoice) { i.Customer.Address = "" }, "customer.address"},
		{"blank item description", func(i *Invoice) { i.Items[0].Description = "  " }, "items[0].description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := Sample()
			tc.mutate(&inv)
			err := inv.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should name field %q", err, tc.field)
			}
		})
	}
}
