package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"doctors/internal/domain"
)

const doctorSelect = `
	SELECT d.id, d.name, d.address, d.contact_details,
	       d.category_id, c.name, d.district_id, ds.name,
	       d.language, d.consultation_fee::text, d.is_active,
	       d.created_at, d.updated_at
	FROM doctors d
	JOIN categories c ON c.id = d.category_id
	JOIN districts ds ON ds.id = d.district_id
`

const doctorInsert = `
	INSERT INTO doctors (
		name,
		address,
		contact_details,
		category_id,
		district_id,
		language,
		consultation_fee,
		is_active,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, TRUE, $8, $8)
	RETURNING id
`

type DoctorRepo struct {
	db *pgxpool.Pool
}

func NewDoctorRepository(db *pgxpool.Pool) *DoctorRepo {
	return &DoctorRepo{
		db: db,
	}
}

func (r *DoctorRepo) Create(ctx context.Context, doctor domain.NewDoctor) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, doctorInsert, doctorInsertArgs(doctor, time.Now())...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create doctor: %w", mapDoctorWriteError(err))
	}

	return id, nil
}

// CreateBatch inserts every doctor in one transaction. Callers validate the whole
// batch beforehand; a failure here rolls back all rows.
func (r *DoctorRepo) CreateBatch(ctx context.Context, doctors []domain.NewDoctor) ([]int64, error) {
	if len(doctors) == 0 {
		return []int64{}, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	batch := &pgx.Batch{}
	for _, doctor := range doctors {
		batch.Queue(doctorInsert, doctorInsertArgs(doctor, now)...)
	}

	results := tx.SendBatch(ctx, batch)
	ids := make([]int64, 0, len(doctors))
	for i := range doctors {
		var id int64
		if err := results.QueryRow().Scan(&id); err != nil {
			results.Close()
			return nil, fmt.Errorf("create doctor %d of batch: %w", i, mapDoctorWriteError(err))
		}
		ids = append(ids, id)
	}

	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return ids, nil
}

func doctorInsertArgs(doctor domain.NewDoctor, now time.Time) []interface{} {
	return []interface{}{
		doctor.Name,
		doctor.Address,
		doctor.ContactDetails,
		doctor.CategoryID,
		doctor.DistrictID,
		string(doctor.Language),
		doctor.ConsultationFee.String(),
		now,
	}
}

func mapDoctorWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		fields := domain.FieldErrors{}
		switch pgErr.ConstraintName {
		case "doctors_district_id_fkey":
			fields.Add("district", "Invalid pk - object does not exist.")
		default:
			fields.Add("category", "Invalid pk - object does not exist.")
		}
		return &domain.ValidationError{Fields: fields}
	}
	return err
}

func (r *DoctorRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	return r.getOne(ctx, doctorSelect+` WHERE d.id = $1`, id)
}

func (r *DoctorRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	return r.getOne(ctx, doctorSelect+` WHERE d.is_active = TRUE AND d.id = $1`, id)
}

func (r *DoctorRepo) getOne(ctx context.Context, query string, id int64) (*domain.Doctor, error) {
	doctor, err := scanDoctor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("doctor", id)
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	return doctor, nil
}

func (r *DoctorRepo) List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, error) {
	conditions := []string{"d.is_active = TRUE"}
	var args []interface{}
	argIndex := 1

	if filter.MinFee != nil {
		conditions = append(conditions, fmt.Sprintf("d.consultation_fee >= $%d::numeric", argIndex))
		args = append(args, filter.MinFee.String())
		argIndex++
	}

	if filter.MaxFee != nil {
		conditions = append(conditions, fmt.Sprintf("d.consultation_fee <= $%d::numeric", argIndex))
		args = append(args, filter.MaxFee.String())
		argIndex++
	}

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("d.category_id = $%d", argIndex))
		args = append(args, *filter.CategoryID)
		argIndex++
	}

	if filter.DistrictID != nil {
		conditions = append(conditions, fmt.Sprintf("d.district_id = $%d", argIndex))
		args = append(args, *filter.DistrictID)
		argIndex++
	}

	if filter.Language != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(d.language) = LOWER($%d)", argIndex))
		args = append(args, *filter.Language)
		argIndex++
	}

	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf(
			`(c.name ILIKE $%[1]d ESCAPE '\' OR ds.name ILIKE $%[1]d ESCAPE '\' OR d.language ILIKE $%[1]d ESCAPE '\')`,
			argIndex,
		))
		args = append(args, likePattern(*filter.Search))
	}

	query := doctorSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY d.name ASC, d.id ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	doctors := make([]domain.Doctor, 0)
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, *doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}

	return doctors, nil
}

func scanDoctor(row pgx.Row) (*domain.Doctor, error) {
	var doctor domain.Doctor
	var language, fee string

	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Address,
		&doctor.ContactDetails,
		&doctor.CategoryID,
		&doctor.CategoryName,
		&doctor.DistrictID,
		&doctor.DistrictName,
		&language,
		&fee,
		&doctor.IsActive,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	doctor.Language = domain.Language(language)
	doctor.ConsultationFee, err = domain.ParseFee(fee)
	if err != nil {
		return nil, fmt.Errorf("parse consultation fee %q: %w", fee, err)
	}

	return &doctor, nil
}

func (r *DoctorRepo) SetActive(ctx context.Context, id int64, active bool) error {
	query := `
		UPDATE doctors
		SET is_active = $1, updated_at = $2
		WHERE id = $3
	`

	tag, err := r.db.Exec(ctx, query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("set doctor active: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return notFound("doctor", id)
	}

	return nil
}

func (r *DoctorRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count doctors: %w", err)
	}

	return count, nil
}
