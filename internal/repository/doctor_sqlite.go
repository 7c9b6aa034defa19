package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"doctors/internal/domain"
	"doctors/pkg/database"
)

type categoryRow lookupRecord

func (categoryRow) TableName() string { return categoriesTable.name }

type districtRow lookupRecord

func (districtRow) TableName() string { return districtsTable.name }

type doctorRow struct {
	ID              int64       `gorm:"primaryKey"`
	Name            string      `gorm:"size:50;not null;index:idx_doctors_active_name,priority:2"`
	Address         string      `gorm:"size:255;not null"`
	ContactDetails  string      `gorm:"size:255;not null"`
	CategoryID      int64       `gorm:"not null;index"`
	Category        categoryRow `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	DistrictID      int64       `gorm:"not null;index"`
	District        districtRow `gorm:"foreignKey:DistrictID;constraint:OnDelete:RESTRICT"`
	Language        string      `gorm:"size:10;not null"`
	ConsultationFee domain.Fee  `gorm:"type:decimal(10,2);not null"`
	IsActive        bool        `gorm:"not null;index:idx_doctors_active_name,priority:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (doctorRow) TableName() string { return "doctors" }

// doctorView is one row of the doctors/categories/districts join.
type doctorView struct {
	ID              int64
	Name            string
	Address         string
	ContactDetails  string
	CategoryID      int64
	CategoryName    string
	DistrictID      int64
	DistrictName    string
	Language        string
	ConsultationFee domain.Fee
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (v doctorView) toDomain() domain.Doctor {
	return domain.Doctor{
		ID:              v.ID,
		Name:            v.Name,
		Address:         v.Address,
		ContactDetails:  v.ContactDetails,
		CategoryID:      v.CategoryID,
		CategoryName:    v.CategoryName,
		DistrictID:      v.DistrictID,
		DistrictName:    v.DistrictName,
		Language:        domain.Language(v.Language),
		ConsultationFee: v.ConsultationFee,
		IsActive:        v.IsActive,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// MigrateSQLite creates or updates the SQLite schema.
func MigrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(&categoryRow{}, &districtRow{}, &doctorRow{}); err != nil {
		return fmt.Errorf("migrate sqlite schema: %w", err)
	}
	return nil
}

type DoctorSQLiteRepo struct {
	db *gorm.DB
}

func NewDoctorSQLiteRepository(db *gorm.DB) *DoctorSQLiteRepo {
	return &DoctorSQLiteRepo{
		db: db,
	}
}

func newDoctorRow(doctor domain.NewDoctor) doctorRow {
	return doctorRow{
		Name:            doctor.Name,
		Address:         doctor.Address,
		ContactDetails:  doctor.ContactDetails,
		CategoryID:      doctor.CategoryID,
		DistrictID:      doctor.DistrictID,
		Language:        string(doctor.Language),
		ConsultationFee: doctor.ConsultationFee,
		IsActive:        true,
	}
}

func (r *DoctorSQLiteRepo) Create(ctx context.Context, doctor domain.NewDoctor) (int64, error) {
	row := newDoctorRow(doctor)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("create doctor: %w", mapSQLiteWriteError(err))
	}

	return row.ID, nil
}

func (r *DoctorSQLiteRepo) CreateBatch(ctx context.Context, doctors []domain.NewDoctor) ([]int64, error) {
	if len(doctors) == 0 {
		return []int64{}, nil
	}

	rows := make([]doctorRow, 0, len(doctors))
	for _, doctor := range doctors {
		rows = append(rows, newDoctorRow(doctor))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create doctors: %w", mapSQLiteWriteError(err))
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	return ids, nil
}

func mapSQLiteWriteError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		fields := domain.FieldErrors{}
		fields.Add("non_field_errors", "Invalid pk - object does not exist.")
		return &domain.ValidationError{Fields: fields}
	}
	return err
}

func (r *DoctorSQLiteRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("doctors AS d").
		Select(`d.id, d.name, d.address, d.contact_details,
			d.category_id, c.name AS category_name, d.district_id, ds.name AS district_name,
			d.language, d.consultation_fee, d.is_active, d.created_at, d.updated_at`).
		Joins("JOIN categories AS c ON c.id = d.category_id").
		Joins("JOIN districts AS ds ON ds.id = d.district_id")
}

func (r *DoctorSQLiteRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	return r.getOne(r.joined(ctx).Where("d.id = ?", id), id)
}

func (r *DoctorSQLiteRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	return r.getOne(r.joined(ctx).Where("d.is_active = ?", true).Where("d.id = ?", id), id)
}

func (r *DoctorSQLiteRepo) getOne(query *gorm.DB, id int64) (*domain.Doctor, error) {
	var views []doctorView
	if err := query.Limit(1).Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	if len(views) == 0 {
		return nil, notFound("doctor", id)
	}

	doctor := views[0].toDomain()
	return &doctor, nil
}

func (r *DoctorSQLiteRepo) List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, error) {
	query := r.joined(ctx).Where("d.is_active = ?", true)

	if filter.MinFee != nil {
		query = query.Where("d.consultation_fee >= CAST(? AS NUMERIC)", filter.MinFee.String())
	}

	if filter.MaxFee != nil {
		query = query.Where("d.consultation_fee <= CAST(? AS NUMERIC)", filter.MaxFee.String())
	}

	if filter.CategoryID != nil {
		query = query.Where("d.category_id = ?", *filter.CategoryID)
	}

	if filter.DistrictID != nil {
		query = query.Where("d.district_id = ?", *filter.DistrictID)
	}

	if filter.Language != nil {
		query = query.Where("LOWER(d.language) = LOWER(?)", *filter.Language)
	}

	if filter.Search != nil {
		pattern := likePattern(*filter.Search)
		query = query.Where(
			fmt.Sprintf(`(%[1]s(c.name) LIKE ? ESCAPE '\' OR %[1]s(ds.name) LIKE ? ESCAPE '\' OR %[1]s(d.language) LIKE ? ESCAPE '\')`, database.SQLiteLowerFunc),
			pattern, pattern, pattern,
		)
	}

	var views []doctorView
	if err := query.Order("d.name ASC, d.id ASC").Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	doctors := make([]domain.Doctor, 0, len(views))
	for _, view := range views {
		doctors = append(doctors, view.toDomain())
	}

	return doctors, nil
}

func (r *DoctorSQLiteRepo) SetActive(ctx context.Context, id int64, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&doctorRow{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("set doctor active: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return notFound("doctor", id)
	}

	return nil
}

func (r *DoctorSQLiteRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&doctorRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count doctors: %w", err)
	}

	return count, nil
}
