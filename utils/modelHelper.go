package utils

import (
	"context"
	"errors"

	"github.com/raihanahmadkhan/fintrak-backend/config"
	"gorm.io/gorm"
)

/* DB fetching */

// fetch model from db
// (may return RecordNotFound)
func FetchModel[T any](ctx context.Context, id int, associations ...string) (*T, error) {

	db := config.GetDB()
	if db == nil {
		return nil, ErrUpstreamUnavailable
	}
	dbCtx := db.WithContext(ctx)
	// preloading
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrorRecordNotFound
		}
		return nil, err
	}
	return &result, nil
}

// fetch all models matching a condition
func FetchModelsWhere[T any](ctx context.Context, cond string, args ...interface{}) ([]*T, error) {

	db := config.GetDB()
	if db == nil {
		return nil, ErrUpstreamUnavailable
	}
	var results []*T
	err := db.WithContext(ctx).Where(cond, args...).Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func FetchAllModels[T any](ctx context.Context) ([]*T, error) {

	db := config.GetDB()
	if db == nil {
		return nil, ErrUpstreamUnavailable
	}
	var results []*T
	err := db.WithContext(ctx).Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func ResourceCountWhere[T any](ctx context.Context, cond string, args ...interface{}) (int64, error) {
	db := config.GetDB()
	if db == nil {
		return 0, ErrUpstreamUnavailable
	}
	var v T
	var count int64
	err := db.WithContext(ctx).Model(&v).Where(cond, args...).Count(&count).Error
	return count, err
}

// check uniqueness of a column value, excluding exceptId (0 for create)
func ValidateUnique[T any](ctx context.Context, column string, value interface{}, exceptId int) error {
	var count int64
	var err error
	if exceptId == 0 {
		count, err = ResourceCountWhere[T](ctx, column+" = ?", value)
	} else {
		count, err = ResourceCountWhere[T](ctx, column+" = ? AND id != ?", value, exceptId)
	}
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New(column + " has already been taken")
	}
	return nil
}
