package domain

import (
	"strings"
	"time"
)

type Doctor struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	ContactDetails  string    `json:"contact_details"`
	CategoryID      int64     `json:"category"`
	CategoryName    string    `json:"category_name"`
	DistrictID      int64     `json:"district"`
	DistrictName    string    `json:"district_name"`
	Language        Language  `json:"language"`
	ConsultationFee Fee       `json:"consultation_fee"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateDoctorDTO is the create payload. ContactDetails is free text and may hold
// several phone numbers or emails; it is stored as sent.
type CreateDoctorDTO struct {
	Name            string      `json:"name" validate:"required,max=50"`
	Address         string      `json:"address" validate:"required,max=255"`
	ContactDetails  string      `json:"contact_details" validate:"required,max=255"`
	CategoryID      int64       `json:"category" validate:"required"`
	DistrictID      int64       `json:"district" validate:"required"`
	Language        Language    `json:"language" validate:"required,oneof=en mandarin cantonese"`
	ConsultationFee DecimalText `json:"consultation_fee" validate:"required,decimal"`
}

// Normalize trims surrounding whitespace from the free-text fields.
func (dto *CreateDoctorDTO) Normalize() {
	dto.Name = strings.TrimSpace(dto.Name)
	dto.Address = strings.TrimSpace(dto.Address)
	dto.ContactDetails = strings.TrimSpace(dto.ContactDetails)
	dto.Language = Language(strings.TrimSpace(string(dto.Language)))
	dto.ConsultationFee = DecimalText(strings.TrimSpace(string(dto.ConsultationFee)))
}

// NewDoctor is a validated create payload ready for the store.
type NewDoctor struct {
	Name            string
	Address         string
	ContactDetails  string
	CategoryID      int64
	DistrictID      int64
	Language        Language
	ConsultationFee Fee
}

// DoctorResponse is the public representation of a doctor. LanguageName is nil
// when the stored code has no display name.
type DoctorResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Category        int64    `json:"category"`
	CategoryName    string   `json:"category_name"`
	Address         string   `json:"address"`
	ContactDetails  string   `json:"contact_details"`
	District        int64    `json:"district"`
	DistrictName    string   `json:"district_name"`
	ConsultationFee Fee      `json:"consultation_fee"`
	Language        Language `json:"language"`
	LanguageName    *string  `json:"language_name"`
}

// DoctorFilter holds the optional list predicates. Every listing is additionally
// restricted to active doctors by the store.
type DoctorFilter struct {
	MinFee     *Decimal
	MaxFee     *Decimal
	CategoryID *int64
	DistrictID *int64
	Language   *string
	Search     *string
}
