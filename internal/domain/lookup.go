package domain

import "strings"

// Lookup is the set of name-only reference entities doctors point at.
type Lookup interface {
	Category | District
}

// CreateLookupDTO is the create payload for a category or district.
type CreateLookupDTO struct {
	Name string `json:"name" validate:"required,max=200"`
}

func (dto *CreateLookupDTO) Normalize() {
	dto.Name = strings.TrimSpace(dto.Name)
}

// LookupResponse is the public representation of a category or district.
type LookupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
