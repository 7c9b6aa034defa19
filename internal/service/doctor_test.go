package service

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"doctors/internal/domain"
)

func TestInactiveDoctorsNeverVisible(t *testing.T) {
	f := newFixture(t)
	f.createDoctor(t, "Dr. John Smith", f.cardio, f.central, domain.LanguageEnglish, "200.00")
	inactive := f.createDoctor(t, "Dr. Inactive", f.cardio, f.central, domain.LanguageMandarin, "250.00")
	require.NoError(t, f.services.Doctor.SoftDelete(f.ctx, inactive.ID))

	doctors, err := f.services.Doctor.List(f.ctx, domain.DoctorFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. John Smith"}, doctorNames(doctors))

	_, err = f.services.Doctor.GetByID(f.ctx, inactive.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, filter := range []domain.DoctorFilter{
		{CategoryID: &f.cardio},
		{Search: strPtr("mandarin")},
		{Language: strPtr("mandarin")},
	} {
		doctors, err := f.services.Doctor.List(f.ctx, filter)
		require.NoError(t, err)
		assert.NotContains(t, doctorNames(doctors), "Dr. Inactive")
	}
}

func TestFiltersOnlyNarrow(t *testing.T) {
	f := newFixture(t)
	f.createDoctor(t, "Dr. A", f.cardio, f.central, domain.LanguageEnglish, "100")
	f.createDoctor(t, "Dr. B", f.derma, f.kowloon, domain.LanguageCantonese, "300")
	f.createDoctor(t, "Dr. C", f.cardio, f.kowloon, domain.LanguageMandarin, "250.50")
	hidden := f.createDoctor(t, "Dr. D", f.derma, f.central, domain.LanguageEnglish, "400")
	require.NoError(t, f.services.Doctor.SoftDelete(f.ctx, hidden.ID))

	all, err := f.services.Doctor.List(f.ctx, domain.DoctorFilter{})
	require.NoError(t, err)
	visible := doctorNames(all)

	minFee := domain.Decimal("200")
	maxFee := domain.Decimal("260")
	filters := []domain.DoctorFilter{
		{MinFee: &minFee},
		{MaxFee: &maxFee},
		{MinFee: &minFee, MaxFee: &maxFee},
		{CategoryID: &f.cardio},
		{DistrictID: &f.central},
		{Language: strPtr("EN")},
		{Search: strPtr("o")},
		{Search: strPtr("central"), CategoryID: &f.derma},
		{Search: strPtr("")},
	}

	for _, filter := range filters {
		doctors, err := f.services.Doctor.List(f.ctx, filter)
		require.NoError(t, err)
		assert.Subset(t, visible, doctorNames(doctors))
	}
}

func TestSearchMatchesCategoryName(t *testing.T) {
	f := newFixture(t)
	cardioSurgery := f.createCategory(t, "Paediatric cardiology")
	f.createDoctor(t, "Dr. Heart", f.cardio, f.central, domain.LanguageEnglish, "100")
	f.createDoctor(t, "Dr. Kid", cardioSurgery, f.kowloon, domain.LanguageCantonese, "100")
	f.createDoctor(t, "Dr. Skin", f.derma, f.central, domain.LanguageEnglish, "100")

	doctors, err := f.services.Doctor.List(f.ctx, domain.DoctorFilter{Search: strPtr("Cardio")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Heart", "Dr. Kid"}, doctorNames(doctors))
}

func TestSoftDeleteRestoreIsReversible(t *testing.T) {
	f := newFixture(t)
	created := f.createDoctor(t, "Dr. Back", f.derma, f.kowloon, domain.LanguageCantonese, "99.90")

	require.NoError(t, f.services.Doctor.SoftDelete(f.ctx, created.ID))
	require.NoError(t, f.services.Doctor.SoftDelete(f.ctx, created.ID))
	require.NoError(t, f.services.Doctor.Restore(f.ctx, created.ID))
	require.NoError(t, f.services.Doctor.Restore(f.ctx, created.ID))

	restored, err := f.services.Doctor.GetByID(f.ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, restored.UpdatedAt.Before(created.UpdatedAt))

	before, after := *created, *restored
	before.CreatedAt, before.UpdatedAt = after.CreatedAt, after.UpdatedAt
	assert.Equal(t, before, after)

	assert.ErrorIs(t, f.services.Doctor.SoftDelete(f.ctx, 9999), domain.ErrNotFound)
}

func TestBulkCreateIsAllOrNothing(t *testing.T) {
	f := newFixture(t)

	before, err := f.repos.Doctor.Count(f.ctx)
	require.NoError(t, err)

	invalid := domain.CreateDoctorDTO{Name: "Dr. Bulk Invalid", CategoryID: f.cardio}
	_, err = f.services.Doctor.BulkCreate(f.ctx, []domain.CreateDoctorDTO{
		f.dto("Dr. Bulk Valid", f.cardio, f.central, domain.LanguageEnglish, "150.00"),
		invalid,
	})

	var bulkErr *domain.BulkValidationError
	require.True(t, errors.As(err, &bulkErr))
	require.Len(t, bulkErr.Records, 2)
	assert.Empty(t, bulkErr.Records[0])
	assert.ElementsMatch(t, []string{"address", "consultation_fee", "contact_details", "district", "language"}, bulkErr.Records[1].Fields())

	after, err := f.repos.Doctor.Count(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ValidationFailures.WithLabelValues("bulk_create")))
}

func TestBulkCreate(t *testing.T) {
	f := newFixture(t)

	created, err := f.services.Doctor.BulkCreate(f.ctx, []domain.CreateDoctorDTO{
		f.dto("Dr. Bulk 1", f.cardio, f.central, domain.LanguageEnglish, "150.00"),
		f.dto("Dr. Bulk 2", f.derma, f.kowloon, domain.LanguageCantonese, "250"),
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "Dr. Bulk 1", created[0].Name)
	assert.Equal(t, "250.00", created[1].ConsultationFee.String())
	assert.Equal(t, "Dermatologist", created[1].CategoryName)
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.DoctorsCreated))

	empty, err := f.services.Doctor.BulkCreate(f.ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		dto    domain.CreateDoctorDTO
		fields map[string]string
	}{
		{
			name:   "missing fields",
			dto:    domain.CreateDoctorDTO{Name: "Dr. Invalid", CategoryID: f.cardio},
			fields: map[string]string{"address": "This field is required.", "district": "This field is required."},
		},
		{
			name:   "whitespace only is missing",
			dto:    f.dto("   ", f.cardio, f.central, domain.LanguageEnglish, "10"),
			fields: map[string]string{"name": "This field is required."},
		},
		{
			name:   "unknown language",
			dto:    f.dto("Dr. X", f.cardio, f.central, domain.Language("french"), "10"),
			fields: map[string]string{"language": `"french" is not a valid choice.`},
		},
		{
			name:   "dangling references",
			dto:    f.dto("Dr. X", 9999, 8888, domain.LanguageEnglish, "10"),
			fields: map[string]string{"category": `Invalid pk "9999" - object does not exist.`, "district": `Invalid pk "8888" - object does not exist.`},
		},
		{
			name:   "fee with three decimals",
			dto:    f.dto("Dr. X", f.cardio, f.central, domain.LanguageEnglish, "10.005"),
			fields: map[string]string{"consultation_fee": "Ensure that there are no more than 2 decimal places."},
		},
		{
			name:   "fee not a number",
			dto:    f.dto("Dr. X", f.cardio, f.central, domain.LanguageEnglish, "ten"),
			fields: map[string]string{"consultation_fee": "A valid number is required."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.services.Doctor.Create(f.ctx, tt.dto)

			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			for field, message := range tt.fields {
				assert.Contains(t, validationErr.Fields[field], message, field)
			}
		})
	}

	count, err := f.repos.Doctor.Count(f.ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateTrimsAndDefaultsActive(t *testing.T) {
	f := newFixture(t)

	doctor := f.createDoctor(t, "  Dr. Padded  ", f.cardio, f.central, domain.LanguageMandarin, " 350 ")
	assert.Equal(t, "Dr. Padded", doctor.Name)
	assert.Equal(t, "350.00", doctor.ConsultationFee.String())
	assert.True(t, doctor.IsActive)
}

func TestEndToEndProjection(t *testing.T) {
	f := newFixture(t)

	created := f.createDoctor(t, "Dr. Smith", f.cardio, f.central, domain.LanguageEnglish, "200.00")

	doctor, err := f.services.Doctor.GetByID(f.ctx, created.ID)
	require.NoError(t, err)

	resp := f.services.Projector.Doctor(*doctor, language.English)
	assert.Equal(t, "Cardiologist", resp.CategoryName)
	assert.Equal(t, "Central", resp.DistrictName)
	assert.Equal(t, f.cardio, resp.Category)
	assert.Equal(t, "200.00", resp.ConsultationFee.String())
	require.NotNil(t, resp.LanguageName)
	assert.Equal(t, "English", *resp.LanguageName)

	zh := f.services.Projector.Doctor(*doctor, language.MustParse("zh-Hant"))
	require.NotNil(t, zh.LanguageName)
	assert.Equal(t, "英文", *zh.LanguageName)

	minFee := domain.Decimal("250")
	doctors, err := f.services.Doctor.List(f.ctx, domain.DoctorFilter{MinFee: &minFee})
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestProjectionUnknownLanguageIsNull(t *testing.T) {
	f := newFixture(t)

	resp := f.services.Projector.Doctor(domain.Doctor{ID: 1, Language: domain.Language("unknown_code")}, language.MustParse("zh-Hans"))
	assert.Nil(t, resp.LanguageName)

	lookups := ProjectLookups([]domain.District{{ID: 3, Name: "Central"}})
	assert.Equal(t, []domain.LookupResponse{{ID: 3, Name: "Central"}}, lookups)
}

func strPtr(s string) *string {
	return &s
}
