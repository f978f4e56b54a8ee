package entities

import (
	"fmt"
	"strings"
)

// CustomerIdentity says who the visit is for at check-in: an existing
// customer, a customer to create, or an existing one whose contact data changes.
type CustomerIdentity interface {
	isCustomerIdentity()
}

type ExistingCustomer struct {
	ID string
}

type NewCustomer struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

type UpdateCustomer struct {
	ID        string
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
}

func (ExistingCustomer) isCustomerIdentity() {}
func (NewCustomer) isCustomerIdentity()      {}
func (UpdateCustomer) isCustomerIdentity()   {}

// ReferencedCustomerID returns the id an identity points at, if any.
func ReferencedCustomerID(identity CustomerIdentity) string {
	switch id := identity.(type) {
	case ExistingCustomer:
		return strings.TrimSpace(id.ID)
	case UpdateCustomer:
		return strings.TrimSpace(id.ID)
	}
	return ""
}

// Validate checks the parts of the identity that need no lookups.
func (c NewCustomer) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return &ValidationError{Err: ErrInvalidCustomerIdent, Details: "first and last name are required"}
	}
	if strings.TrimSpace(c.Phone) == "" && strings.TrimSpace(c.Email) == "" {
		return &ValidationError{Err: ErrInvalidCustomerIdent, Details: "phone or email is required"}
	}
	return nil
}

// Apply returns the customer with the non-nil fields overwritten.
func (u UpdateCustomer) Apply(c Customer) Customer {
	if u.FirstName != nil {
		c.FirstName = strings.TrimSpace(*u.FirstName)
	}
	if u.LastName != nil {
		c.LastName = strings.TrimSpace(*u.LastName)
	}
	if u.Phone != nil {
		c.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Email != nil {
		c.Email = strings.TrimSpace(*u.Email)
	}
	return c
}

func describeIdentity(identity CustomerIdentity) string {
	switch identity.(type) {
	case ExistingCustomer:
		return "existing"
	case NewCustomer:
		return "new"
	case UpdateCustomer:
		return "update"
	case nil:
		return "none"
	}
	return fmt.Sprintf("%T", identity)
}

// UnknownIdentityError is returned by exhaustive switches hitting a variant they do not handle.
func UnknownIdentityError(identity CustomerIdentity) error {
	return &ValidationError{Err: ErrInvalidCustomerIdent, Details: "unsupported customer identity " + describeIdentity(identity)}
}
