package domain

import "strings"

// User is a customer account as listed in the admin dashboard.
type User struct {
	ID                 ID     `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Gender             string `json:"gender"`
	DateOfBirth        string `json:"date_of_birth,omitempty"`
	PreferredFragrance string `json:"preferred_fragrance,omitempty"`
	CreatedAt          string `json:"created_at,omitempty"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Address is a saved shipping address.
type Address struct {
	ID            ID     `json:"id"`
	Title         string `json:"title,omitempty"`
	Name          string `json:"name,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	StreetAddress string `json:"street_address"`
	Apartment     string `json:"apartment,omitempty"`
	Landmark      string `json:"landmark,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	IsDefault     bool   `json:"is_default"`
}

// DisplayName returns the recipient name.
func (a Address) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Line renders the address on one line, skipping empty parts.
func (a Address) Line() string {
	var parts []string
	for _, p := range []string{a.StreetAddress, a.Apartment, a.Landmark, a.City, a.State, a.PostalCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// SessionUser is the identity returned by login, register and check-auth.
type SessionUser struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
}

// DisplayName prefers the combined name the server sends on check-auth.
func (s SessionUser) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if n := strings.TrimSpace(s.FirstName + " " + s.LastName); n != "" {
		return n
	}
	return s.Email
}

// AuthStatus is the answer to check-auth.
type AuthStatus struct {
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user,omitempty"`
}
