package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"doctors/internal/domain"
	"doctors/internal/metrics"
	"doctors/internal/repository"
	"doctors/pkg/validator"
)

const (
	operationCreate     = "create"
	operationBulkCreate = "bulk_create"
)

type DoctorServiceImpl struct {
	repos     *repository.Repositories
	validator *validator.Validator
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewDoctorService(repos *repository.Repositories, v *validator.Validator, m *metrics.Metrics, logger *zap.Logger) *DoctorServiceImpl {
	return &DoctorServiceImpl{
		repos:     repos,
		validator: v,
		metrics:   m,
		logger:    logger.With(zap.String("entity", "doctor")),
	}
}

// List returns the active doctors matching every predicate in filter.
func (s *DoctorServiceImpl) List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, error) {
	start := time.Now()

	doctors, err := s.repos.Doctor.List(ctx, filter)
	if err != nil {
		s.logger.Error("list failed", zap.Error(err))
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	s.metrics.ObserveDoctorList(start, len(doctors))
	return doctors, nil
}

// GetByID returns an active doctor. Inactive doctors are reported as not found.
func (s *DoctorServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	doctor, err := s.repos.Doctor.GetActiveByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("get failed", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}

	return doctor, nil
}

func (s *DoctorServiceImpl) Create(ctx context.Context, dto domain.CreateDoctorDTO) (*domain.Doctor, error) {
	doctor, fields, err := s.validate(ctx, dto, newReferenceCache())
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		s.metrics.IncrementValidationFailure(operationCreate)
		s.logger.Info("create rejected", zap.Strings("fields", fields.Fields()))
		return nil, &domain.ValidationError{Fields: fields}
	}

	id, err := s.repos.Doctor.Create(ctx, doctor)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			s.metrics.IncrementValidationFailure(operationCreate)
			return nil, validationErr
		}
		s.logger.Error("create failed", zap.String("name", doctor.Name), zap.Error(err))
		return nil, fmt.Errorf("create doctor: %w", err)
	}

	s.metrics.AddDoctorsCreated(1)
	s.logger.Info("created", zap.Int64("id", id))

	return s.reload(ctx, id)
}

// BulkCreate validates every record before writing any of them. When one or
// more records are invalid nothing is stored and a BulkValidationError lists
// the messages per record, in submission order.
func (s *DoctorServiceImpl) BulkCreate(ctx context.Context, dtos []domain.CreateDoctorDTO) ([]domain.Doctor, error) {
	doctors, err := s.validateBatch(ctx, dtos)
	if err != nil {
		var bulkErr *domain.BulkValidationError
		if errors.As(err, &bulkErr) {
			s.metrics.IncrementValidationFailure(operationBulkCreate)
			s.logger.Info("bulk create rejected", zap.Int("records", len(dtos)))
		}
		return nil, err
	}

	ids, err := s.repos.Doctor.CreateBatch(ctx, doctors)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			s.metrics.IncrementValidationFailure(operationBulkCreate)
			return nil, validationErr
		}
		s.logger.Error("bulk create failed", zap.Int("records", len(doctors)), zap.Error(err))
		return nil, fmt.Errorf("bulk create doctors: %w", err)
	}

	s.metrics.AddDoctorsCreated(len(ids))
	s.logger.Info("bulk created", zap.Int64s("ids", ids))

	created := make([]domain.Doctor, 0, len(ids))
	for _, id := range ids {
		doctor, err := s.reload(ctx, id)
		if err != nil {
			return nil, err
		}
		created = append(created, *doctor)
	}

	return created, nil
}

func (s *DoctorServiceImpl) validateBatch(ctx context.Context, dtos []domain.CreateDoctorDTO) ([]domain.NewDoctor, error) {
	refs := newReferenceCache()
	doctors := make([]domain.NewDoctor, 0, len(dtos))
	records := make([]domain.FieldErrors, 0, len(dtos))
	invalid := false

	for _, dto := range dtos {
		doctor, fields, err := s.validate(ctx, dto, refs)
		if err != nil {
			return nil, err
		}
		if len(fields) > 0 {
			invalid = true
		} else {
			fields = domain.FieldErrors{}
		}
		records = append(records, fields)
		doctors = append(doctors, doctor)
	}

	if invalid {
		return nil, &domain.BulkValidationError{Records: records}
	}

	return doctors, nil
}

func (s *DoctorServiceImpl) reload(ctx context.Context, id int64) (*domain.Doctor, error) {
	doctor, err := s.repos.Doctor.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("reload after create failed", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("reload doctor %d: %w", id, err)
	}
	return doctor, nil
}

func (s *DoctorServiceImpl) SoftDelete(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, false)
}

func (s *DoctorServiceImpl) Restore(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, true)
}

func (s *DoctorServiceImpl) setActive(ctx context.Context, id int64, active bool) error {
	if err := s.repos.Doctor.SetActive(ctx, id, active); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("set active failed", zap.Int64("id", id), zap.Bool("active", active), zap.Error(err))
		}
		return err
	}

	s.logger.Info("active flag changed", zap.Int64("id", id), zap.Bool("active", active))
	return nil
}

// referenceCache remembers category and district existence for one request.
type referenceCache struct {
	categories map[int64]bool
	districts  map[int64]bool
}

func newReferenceCache() *referenceCache {
	return &referenceCache{
		categories: map[int64]bool{},
		districts:  map[int64]bool{},
	}
}

func (s *DoctorServiceImpl) validate(ctx context.Context, dto domain.CreateDoctorDTO, refs *referenceCache) (domain.NewDoctor, domain.FieldErrors, error) {
	dto.Normalize()

	fields := s.validator.Struct(dto)
	if fields == nil {
		fields = domain.FieldErrors{}
	}

	if _, failed := fields["category"]; !failed {
		ok, err := exists(ctx, s.repos.Category.Exists, refs.categories, dto.CategoryID)
		if err != nil {
			s.logger.Error("category lookup failed", zap.Int64("category", dto.CategoryID), zap.Error(err))
			return domain.NewDoctor{}, nil, fmt.Errorf("check category: %w", err)
		}
		if !ok {
			fields.Add("category", invalidPK(dto.CategoryID))
		}
	}

	if _, failed := fields["district"]; !failed {
		ok, err := exists(ctx, s.repos.District.Exists, refs.districts, dto.DistrictID)
		if err != nil {
			s.logger.Error("district lookup failed", zap.Int64("district", dto.DistrictID), zap.Error(err))
			return domain.NewDoctor{}, nil, fmt.Errorf("check district: %w", err)
		}
		if !ok {
			fields.Add("district", invalidPK(dto.DistrictID))
		}
	}

	if len(fields) > 0 {
		return domain.NewDoctor{}, fields, nil
	}

	fee, err := dto.ConsultationFee.Fee()
	if err != nil {
		fields.Add("consultation_fee", err.Error())
		return domain.NewDoctor{}, fields, nil
	}

	return domain.NewDoctor{
		Name:            dto.Name,
		Address:         dto.Address,
		ContactDetails:  dto.ContactDetails,
		CategoryID:      dto.CategoryID,
		DistrictID:      dto.DistrictID,
		Language:        dto.Language,
		ConsultationFee: fee,
	}, nil, nil
}

func exists(ctx context.Context, check func(context.Context, int64) (bool, error), seen map[int64]bool, id int64) (bool, error) {
	if ok, cached := seen[id]; cached {
		return ok, nil
	}
	ok, err := check(ctx, id)
	if err != nil {
		return false, err
	}
	seen[id] = ok
	return ok, nil
}

func invalidPK(id int64) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}
