package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"doctors/internal/domain"
	"doctors/internal/repository"
)

// Fixture is the seed file layout. Doctors reference categories and districts
// by name.
type Fixture struct {
	Categories []string        `json:"categories"`
	Districts  []string        `json:"districts"`
	Doctors    []FixtureDoctor `json:"doctors"`
}

type FixtureDoctor struct {
	Name            string             `json:"name"`
	Address         string             `json:"address"`
	ContactDetails  string             `json:"contact_details"`
	Category        string             `json:"category"`
	District        string             `json:"district"`
	Language        domain.Language    `json:"language"`
	ConsultationFee domain.DecimalText `json:"consultation_fee"`
	IsActive        *bool              `json:"is_active"`
}

type SeedResult struct {
	Categories int
	Districts  int
	Doctors    int
}

// Seeder loads fixtures into an empty or partially filled store. Categories and
// districts are matched by name; doctors are only inserted into an empty
// doctors table.
type Seeder struct {
	repos    *repository.Repositories
	category CategoryService
	district DistrictService
	doctor   DoctorService
	logger   *zap.Logger
}

func NewSeeder(repos *repository.Repositories, category CategoryService, district DistrictService, doctor DoctorService, logger *zap.Logger) *Seeder {
	return &Seeder{
		repos:    repos,
		category: category,
		district: district,
		doctor:   doctor,
		logger:   logger.Named("seed"),
	}
}

func (s *Seeder) SeedFile(ctx context.Context, path string) (SeedResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return SeedResult{}, fmt.Errorf("open seed file: %w", err)
	}
	defer file.Close()

	var fixture Fixture
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fixture); err != nil {
		return SeedResult{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	return s.Seed(ctx, fixture)
}

func (s *Seeder) Seed(ctx context.Context, fixture Fixture) (SeedResult, error) {
	var result SeedResult

	categories, created, err := ensureLookups(ctx, s.repos.Category, s.category, fixture.Categories)
	if err != nil {
		return result, fmt.Errorf("seed categories: %w", err)
	}
	result.Categories = created

	districts, created, err := ensureLookups(ctx, s.repos.District, s.district, fixture.Districts)
	if err != nil {
		return result, fmt.Errorf("seed districts: %w", err)
	}
	result.Districts = created

	count, err := s.repos.Doctor.Count(ctx)
	if err != nil {
		return result, fmt.Errorf("count doctors: %w", err)
	}
	if count > 0 || len(fixture.Doctors) == 0 {
		s.logger.Info("seeded",
			zap.Int("categories", result.Categories),
			zap.Int("districts", result.Districts),
			zap.Int64("existing_doctors", count),
		)
		return result, nil
	}

	dtos := make([]domain.CreateDoctorDTO, 0, len(fixture.Doctors))
	for i, doc := range fixture.Doctors {
		categoryID, ok := categories[strings.TrimSpace(doc.Category)]
		if !ok {
			return result, fmt.Errorf("doctor %d: unknown category %q", i, doc.Category)
		}
		districtID, ok := districts[strings.TrimSpace(doc.District)]
		if !ok {
			return result, fmt.Errorf("doctor %d: unknown district %q", i, doc.District)
		}

		dtos = append(dtos, domain.CreateDoctorDTO{
			Name:            doc.Name,
			Address:         doc.Address,
			ContactDetails:  doc.ContactDetails,
			CategoryID:      categoryID,
			DistrictID:      districtID,
			Language:        doc.Language,
			ConsultationFee: doc.ConsultationFee,
		})
	}

	doctors, err := s.doctor.BulkCreate(ctx, dtos)
	if err != nil {
		return result, fmt.Errorf("seed doctors: %w", err)
	}
	result.Doctors = len(doctors)

	for i, doctor := range doctors {
		if active := fixture.Doctors[i].IsActive; active != nil && !*active {
			if err := s.doctor.SoftDelete(ctx, doctor.ID); err != nil {
				return result, fmt.Errorf("deactivate seeded doctor %d: %w", doctor.ID, err)
			}
		}
	}

	s.logger.Info("seeded",
		zap.Int("categories", result.Categories),
		zap.Int("districts", result.Districts),
		zap.Int("doctors", result.Doctors),
	)

	return result, nil
}

// ensureLookups returns the id for every trimmed name, creating the missing
// ones through the lookup service.
func ensureLookups[T domain.Lookup](ctx context.Context, repo repository.LookupRepository[T], svc LookupService[T], names []string) (map[string]int64, int, error) {
	ids := make(map[string]int64, len(names))
	created := 0

	for _, raw := range names {
		dto := domain.CreateLookupDTO{Name: raw}
		dto.Normalize()
		name := dto.Name

		if _, seen := ids[name]; seen {
			continue
		}

		existing, err := repo.GetByName(ctx, name)
		switch {
		case err == nil:
			ids[name] = lookupFields(*existing).ID
		case errors.Is(err, domain.ErrNotFound):
			id, err := svc.Create(ctx, dto)
			if err != nil {
				return nil, created, fmt.Errorf("%q: %w", raw, err)
			}
			ids[name] = id
			created++
		default:
			return nil, created, err
		}
	}

	return ids, created, nil
}
