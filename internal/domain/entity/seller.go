// Package entity contains the flat app model the seller UI consumes. Backend
// record shapes never leak past the translator; everything above it speaks
// these types.
package entity

import "time"

// Seller merges the seller identity/profile with its business profile.
// An empty ID means the authenticated user has no seller profile yet.
type Seller struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	BusinessName        string    `json:"businessName"`
	BusinessType        string    `json:"businessType"` // Business tagline shown on the storefront.
	Phone               string    `json:"phone"`
	WorkAddress         string    `json:"workAddress"`
	SelectedTemplateIDs []string  `json:"selectedTemplateIds"`
	IsOnboarded         bool      `json:"isOnboarded"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// HasProfile reports whether a seller record exists for the session.
func (s *Seller) HasProfile() bool {
	return s != nil && s.ID != ""
}

// AuthUser is the authenticated account as returned by /api/auth/me.
type AuthUser struct {
	ID            string `json:"id"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Role          string `json:"role"` // admin, seller or visitor
	SellerID      string `json:"sellerId,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
	PhoneVerified bool   `json:"phoneVerified"`
}
