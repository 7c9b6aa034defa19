package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"doctors/internal/domain"
	"doctors/internal/repository"
	"doctors/pkg/validator"
)

type LookupServiceImpl[T domain.Lookup] struct {
	repo      repository.LookupRepository[T]
	entity    string
	validator *validator.Validator
	logger    *zap.Logger
}

func newLookupService[T domain.Lookup](repo repository.LookupRepository[T], entity string, v *validator.Validator, logger *zap.Logger) *LookupServiceImpl[T] {
	return &LookupServiceImpl[T]{
		repo:      repo,
		entity:    entity,
		validator: v,
		logger:    logger.With(zap.String("entity", entity)),
	}
}

func (s *LookupServiceImpl[T]) Create(ctx context.Context, dto domain.CreateLookupDTO) (int64, error) {
	dto.Normalize()
	if fields := s.validator.Struct(dto); fields != nil {
		return 0, &domain.ValidationError{Fields: fields}
	}

	id, err := s.repo.Create(ctx, dto.Name)
	if err != nil {
		s.logger.Error("create failed", zap.String("name", dto.Name), zap.Error(err))
		return 0, fmt.Errorf("create %s: %w", s.entity, err)
	}

	s.logger.Info("created", zap.Int64("id", id), zap.String("name", dto.Name))
	return id, nil
}

func (s *LookupServiceImpl[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("get failed", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}

	return entity, nil
}

func (s *LookupServiceImpl[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list failed", zap.Error(err))
		return nil, fmt.Errorf("list %s: %w", s.entity, err)
	}

	return items, nil
}

func (s *LookupServiceImpl[T]) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		var refErr *domain.ReferentialIntegrityError
		switch {
		case errors.As(err, &refErr):
			s.logger.Warn("delete refused", zap.Int64("id", id), zap.Int64("doctors", refErr.Doctors))
		case errors.Is(err, domain.ErrNotFound):
		default:
			s.logger.Error("delete failed", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	s.logger.Info("deleted", zap.Int64("id", id))
	return nil
}
