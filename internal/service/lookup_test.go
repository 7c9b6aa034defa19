package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctors/internal/domain"
)

func TestLookupCreateValidates(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.Category.Create(f.ctx, domain.CreateLookupDTO{Name: "   "})
	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"This field is required."}, validationErr.Fields["name"])

	id, err := f.services.District.Create(f.ctx, domain.CreateLookupDTO{Name: "  Wan Chai "})
	require.NoError(t, err)

	district, err := f.services.District.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Wan Chai", district.Name)
}

func TestLookupListIsOrderedByName(t *testing.T) {
	f := newFixture(t)
	f.createCategory(t, "Anaesthetist")

	categories, err := f.services.Category.List(f.ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Anaesthetist", "Cardiologist", "Dermatologist"}, names)
}

func TestLookupDeleteIsProtectedByAnyDoctor(t *testing.T) {
	f := newFixture(t)
	doctor := f.createDoctor(t, "Dr. Gone", f.derma, f.kowloon, domain.LanguageEnglish, "80")
	require.NoError(t, f.services.Doctor.SoftDelete(f.ctx, doctor.ID))

	var refErr *domain.ReferentialIntegrityError
	require.True(t, errors.As(f.services.Category.Delete(f.ctx, f.derma), &refErr))
	require.True(t, errors.As(f.services.District.Delete(f.ctx, f.kowloon), &refErr))

	stored, err := f.repos.Doctor.GetByID(f.ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, f.derma, stored.CategoryID)

	require.NoError(t, f.services.Category.Delete(f.ctx, f.cardio))
	_, err = f.services.Category.GetByID(f.ctx, f.cardio)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.services.Category.Delete(f.ctx, f.cardio), domain.ErrNotFound)
}
