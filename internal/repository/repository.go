package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"doctors/internal/domain"
)

type Repositories struct {
	Category CategoryRepository
	District DistrictRepository
	Doctor   DoctorRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Category: newLookupPostgres[domain.Category](db, categoriesTable),
		District: newLookupPostgres[domain.District](db, districtsTable),
		Doctor:   NewDoctorRepository(db),
	}
}

func NewSQLiteRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Category: newLookupSQLite[domain.Category](db, categoriesTable),
		District: newLookupSQLite[domain.District](db, districtsTable),
		Doctor:   NewDoctorSQLiteRepository(db),
	}
}

// LookupRepository stores categories or districts. Delete refuses to remove a
// row that any doctor references, active or not.
type LookupRepository[T domain.Lookup] interface {
	Create(ctx context.Context, name string) (int64, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	GetByName(ctx context.Context, name string) (*T, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository = LookupRepository[domain.Category]

type DistrictRepository = LookupRepository[domain.District]

type DoctorRepository interface {
	Create(ctx context.Context, doctor domain.NewDoctor) (int64, error)
	CreateBatch(ctx context.Context, doctors []domain.NewDoctor) ([]int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Doctor, error)
	List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Count(ctx context.Context) (int64, error)
}

type lookupTable struct {
	name     string
	entity   string
	fkColumn string
}

var (
	categoriesTable = lookupTable{name: "categories", entity: "category", fkColumn: "category_id"}
	districtsTable  = lookupTable{name: "districts", entity: "district", fkColumn: "district_id"}
)

// lookupRecord mirrors domain.Category and domain.District field for field so
// either can be produced by conversion.
type lookupRecord struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"size:200;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toLookups[T domain.Lookup](records []lookupRecord) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		out = append(out, T(rec))
	}
	return out
}

func protectedError(table lookupTable, id, doctors int64) error {
	return &domain.ReferentialIntegrityError{Entity: table.entity, ID: id, Doctors: doctors}
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
}

// likePattern builds a lowercased substring pattern with LIKE wildcards escaped.
// Callers compare it against a column folded with Unicode rules.
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(replacer.Replace(term)) + "%"
}
