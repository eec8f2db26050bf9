package models

import "strings"

// Customer is one store customer as returned by the customers endpoint.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Name returns the customer's display name, falling back to the email.
func (c *Customer) Name() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return c.Email
	}
	return name
}

// Matches reports whether the name or email contains the query,
// case-insensitively. An empty query matches everything.
func (c *Customer) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name()), q) ||
		strings.Contains(strings.ToLower(c.Email), q)
}
