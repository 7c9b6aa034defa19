package service

import (
	"context"

	"go.uber.org/zap"

	"doctors/config"
	"doctors/internal/domain"
	"doctors/internal/i18n"
	"doctors/internal/metrics"
	"doctors/internal/repository"
	"doctors/pkg/validator"
)

type Deps struct {
	Repos     *repository.Repositories
	Logger    *zap.Logger
	Config    *config.Config
	Resolver  *i18n.Resolver
	Metrics   *metrics.Metrics
	Validator *validator.Validator
}

type Services struct {
	Category  CategoryService
	District  DistrictService
	Doctor    DoctorService
	Projector *Projector
	Seeder    *Seeder
}

func NewServices(deps Deps) *Services {
	category := newLookupService[domain.Category](deps.Repos.Category, "category", deps.Validator, deps.Logger)
	district := newLookupService[domain.District](deps.Repos.District, "district", deps.Validator, deps.Logger)
	doctor := NewDoctorService(deps.Repos, deps.Validator, deps.Metrics, deps.Logger)

	return &Services{
		Category:  category,
		District:  district,
		Doctor:    doctor,
		Projector: NewProjector(deps.Resolver),
		Seeder:    NewSeeder(deps.Repos, category, district, doctor, deps.Logger),
	}
}

// LookupService manages categories or districts. Delete is refused while any
// doctor references the row.
type LookupService[T domain.Lookup] interface {
	Create(ctx context.Context, dto domain.CreateLookupDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryService = LookupService[domain.Category]

type DistrictService = LookupService[domain.District]

type DoctorService interface {
	List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (*domain.Doctor, error)
	BulkCreate(ctx context.Context, dtos []domain.CreateDoctorDTO) ([]domain.Doctor, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}
