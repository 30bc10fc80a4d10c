package core

import "strings"

// Supplier is the contact a purchase order is addressed to.
type Supplier struct {
	CompanyName string
	Name        string
	Email       string
}

// DisplayName prefers the company name and falls back to the personal name.
func (s Supplier) DisplayName() string {
	if company := strings.TrimSpace(s.CompanyName); company != "" {
		return company
	}
	return strings.TrimSpace(s.Name)
}
