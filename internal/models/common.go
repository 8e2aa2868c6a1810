package models

import "time"

// PageInfo describes where a list result sits in the full collection.
type PageInfo struct {
	CurrentPage int `json:"currentPage" yaml:"current_page"`
	TotalPages  int `json:"totalPages" yaml:"total_pages"`
	TotalItems  int `json:"totalItems" yaml:"total_items"`
}

// Normalize enforces totalPages >= 1, 1 <= currentPage <= totalPages and totalItems >= 0.
func (p PageInfo) Normalize() PageInfo {
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.CurrentPage > p.TotalPages {
		p.CurrentPage = p.TotalPages
	}
	if p.TotalItems < 0 {
		p.TotalItems = 0
	}
	return p
}

// Page is one fetched list result. It replaces the previous result wholesale.
type Page[T any] struct {
	Items []T      `json:"items" yaml:"items"`
	Info  PageInfo `json:"pageInfo" yaml:"page_info"`
}

// ListParams are the query parameters shared by list endpoints.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// Timestamps are the server-managed audit fields.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

// ErrorDetail provides detailed error information
type ErrorDetail struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

// User is the profile returned by the login endpoint.
type User struct {
	ID            string    `json:"id" yaml:"id"`
	FirstName     string    `json:"firstName" yaml:"first_name"`
	LastName      string    `json:"lastName" yaml:"last_name"`
	Email         string    `json:"email" yaml:"email"`
	Role          string    `json:"role" yaml:"role"`
	EmailVerified bool      `json:"emailVerified" yaml:"email_verified"`
	LastLogin     time.Time `json:"lastLogin,omitempty" yaml:"last_login,omitempty"`
}

// RoleSuperAdmin is the only role allowed into the admin client.
const RoleSuperAdmin = "superadmin"

// LoginResponse is the body of POST /auth/login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user,omitempty"`
}
