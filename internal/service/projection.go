package service

import (
	"time"

	"golang.org/x/text/language"

	"doctors/internal/domain"
	"doctors/internal/i18n"
)

// Projector renders stored records as API representations.
type Projector struct {
	resolver *i18n.Resolver
}

func NewProjector(resolver *i18n.Resolver) *Projector {
	return &Projector{resolver: resolver}
}

// Doctor projects one doctor for the locale tag. language_name is null when
// the stored code has no display name.
func (p *Projector) Doctor(doctor domain.Doctor, tag language.Tag) domain.DoctorResponse {
	resp := domain.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Category:        doctor.CategoryID,
		CategoryName:    doctor.CategoryName,
		Address:         doctor.Address,
		ContactDetails:  doctor.ContactDetails,
		District:        doctor.DistrictID,
		DistrictName:    doctor.DistrictName,
		ConsultationFee: doctor.ConsultationFee,
		Language:        doctor.Language,
	}

	if name, ok := p.resolver.LanguageName(doctor.Language, tag); ok {
		resp.LanguageName = &name
	}

	return resp
}

func (p *Projector) Doctors(doctors []domain.Doctor, tag language.Tag) []domain.DoctorResponse {
	out := make([]domain.DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		out = append(out, p.Doctor(doctor, tag))
	}
	return out
}

// lookupFields has the field layout shared by Category and District.
type lookupFields struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ProjectLookup[T domain.Lookup](item T) domain.LookupResponse {
	fields := lookupFields(item)
	return domain.LookupResponse{ID: fields.ID, Name: fields.Name}
}

func ProjectLookups[T domain.Lookup](items []T) []domain.LookupResponse {
	out := make([]domain.LookupResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ProjectLookup(item))
	}
	return out
}
