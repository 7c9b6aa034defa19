package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"doctors/internal/domain"
)

type LookupSQLiteRepo[T domain.Lookup] struct {
	db    *gorm.DB
	table lookupTable
}

func newLookupSQLite[T domain.Lookup](db *gorm.DB, table lookupTable) *LookupSQLiteRepo[T] {
	return &LookupSQLiteRepo[T]{
		db:    db,
		table: table,
	}
}

func (r *LookupSQLiteRepo[T]) Create(ctx context.Context, name string) (int64, error) {
	rec := lookupRecord{Name: name}
	if err := r.db.WithContext(ctx).Table(r.table.name).Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("create %s: %w", r.table.entity, err)
	}

	return rec.ID, nil
}

func (r *LookupSQLiteRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var rec lookupRecord
	err := r.db.WithContext(ctx).Table(r.table.name).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(r.table.entity, id)
		}
		return nil, fmt.Errorf("get %s: %w", r.table.entity, err)
	}

	entity := T(rec)
	return &entity, nil
}

func (r *LookupSQLiteRepo[T]) GetByName(ctx context.Context, name string) (*T, error) {
	var rec lookupRecord
	err := r.db.WithContext(ctx).Table(r.table.name).Where("name = ?", name).Order("id ASC").First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %q: %w", r.table.entity, name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", r.table.entity, err)
	}

	entity := T(rec)
	return &entity, nil
}

func (r *LookupSQLiteRepo[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table(r.table.name).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check %s exists: %w", r.table.entity, err)
	}

	return count > 0, nil
}

func (r *LookupSQLiteRepo[T]) List(ctx context.Context) ([]T, error) {
	var records []lookupRecord
	if err := r.db.WithContext(ctx).Table(r.table.name).Order("name ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table.name, err)
	}

	return toLookups[T](records), nil
}

func (r *LookupSQLiteRepo[T]) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec lookupRecord
		if err := tx.Table(r.table.name).Where("id = ?", id).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(r.table.entity, id)
			}
			return fmt.Errorf("get %s: %w", r.table.entity, err)
		}

		var references int64
		if err := tx.Table("doctors").Where(r.table.fkColumn+" = ?", id).Count(&references).Error; err != nil {
			return fmt.Errorf("count %s references: %w", r.table.entity, err)
		}
		if references > 0 {
			return protectedError(r.table, id, references)
		}

		if err := tx.Table(r.table.name).Where("id = ?", id).Delete(&lookupRecord{}).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return protectedError(r.table, id, 1)
			}
			return fmt.Errorf("delete %s: %w", r.table.entity, err)
		}

		return nil
	})
}
