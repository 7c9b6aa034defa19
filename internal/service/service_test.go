package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"doctors/config"
	"doctors/internal/domain"
	"doctors/internal/i18n"
	"doctors/internal/metrics"
	"doctors/internal/repository"
	"doctors/pkg/database"
	"doctors/pkg/validator"
)

type fixture struct {
	ctx      context.Context
	repos    *repository.Repositories
	services *Services
	metrics  *metrics.Metrics

	cardio, derma    int64
	central, kowloon int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.NewSQLiteDB("file:"+uuid.NewString()+"?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, repository.MigrateSQLite(db))

	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	resolver, err := i18n.NewResolver(bundle, i18n.BaseLocale)
	require.NoError(t, err)

	f := &fixture{
		ctx:     context.Background(),
		repos:   repository.NewSQLiteRepositories(db),
		metrics: metrics.New(),
	}
	f.services = NewServices(Deps{
		Repos:     f.repos,
		Logger:    zap.NewNop(),
		Config:    &config.Config{},
		Resolver:  resolver,
		Metrics:   f.metrics,
		Validator: validator.New(),
	})

	f.cardio = f.createCategory(t, "Cardiologist")
	f.derma = f.createCategory(t, "Dermatologist")
	f.central = f.createDistrict(t, "Central")
	f.kowloon = f.createDistrict(t, "Kowloon")

	return f
}

func (f *fixture) createCategory(t *testing.T, name string) int64 {
	id, err := f.services.Category.Create(f.ctx, domain.CreateLookupDTO{Name: name})
	require.NoError(t, err)
	return id
}

func (f *fixture) createDistrict(t *testing.T, name string) int64 {
	id, err := f.services.District.Create(f.ctx, domain.CreateLookupDTO{Name: name})
	require.NoError(t, err)
	return id
}

func (f *fixture) dto(name string, category, district int64, lang domain.Language, fee string) domain.CreateDoctorDTO {
	return domain.CreateDoctorDTO{
		Name:            name,
		Address:         "123 Medical Street",
		ContactDetails:  "Phone: +852 1234 5678",
		CategoryID:      category,
		DistrictID:      district,
		Language:        lang,
		ConsultationFee: domain.DecimalText(fee),
	}
}

func (f *fixture) createDoctor(t *testing.T, name string, category, district int64, lang domain.Language, fee string) *domain.Doctor {
	doctor, err := f.services.Doctor.Create(f.ctx, f.dto(name, category, district, lang, fee))
	require.NoError(t, err)
	return doctor
}

func doctorNames(doctors []domain.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.Name)
	}
	return out
}
