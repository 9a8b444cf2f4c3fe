package invoice

import (
	"errors"
	"fmt"
	"strings"
)

// NonEmpty reports whether text contains anything besides whitespace.
func NonEmpty(text string) bool {
	return strings.TrimSpace(text) != ""
}

// Validate checks the fields required for a billable line.
func (it Item) Validate() error {
	if !NonEmpty(it.Description) {
		return NewValidationError("description", "item description must not be blank")
	}
	return nil
}

// Validate checks the fields required before an invoice is persisted or
// rendered from interactive entry. It reports the first problem found;
// nothing is mutated, so the caller's state survives a rejection.
func (inv Invoice) Validate() error {
	if !NonEmpty(inv.Company.Name) {
		return NewValidationError("company.name", "company name must not be blank")
	}
	if !NonEmpty(inv.Company.Address) {
		return NewValidationError("company.address", "company address must not be blank")
	}
	if !NonEmpty(inv.Customer.Name) {
		return NewValidationError("customer.name", "customer name must not be blank")
	}
	if !NonEmpty(inv.Customer.Address) {
		return NewValidationError("customer.address", "customer address must not be blank")
	}
	for i, it := range inv.Items {
		if err := it.Validate(); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return NewValidationError(fmt.Sprintf("items[%d].%s", i, verr.Field), verr.Message)
			}
			return err
		}
	}
	return nil
}
