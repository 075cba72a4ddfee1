package repository

import (
	"context"

	"github.com/pathiram/backend/internal/model"
	"gorm.io/gorm"
)

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CountStates(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.State{}).Count(&count).Error
	return count, translate(err)
}

func (r *locationRepository) CreateStates(ctx context.Context, states []model.State) error {
	if len(states) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return translate(tx.Create(&states).Error)
	})
}

func (r *locationRepository) States(ctx context.Context) ([]model.State, error) {
	var states []model.State
	err := r.db.WithContext(ctx).Order("name").Find(&states).Error
	return states, translate(err)
}

func (r *locationRepository) Districts(ctx context.Context, stateID uint) ([]model.District, error) {
	var districts []model.District
	err := r.db.WithContext(ctx).Where("state_id = ?", stateID).Order("name").Find(&districts).Error
	return districts, translate(err)
}

func (r *locationRepository) Taluks(ctx context.Context, districtID uint) ([]model.Taluk, error) {
	var taluks []model.Taluk
	err := r.db.WithContext(ctx).Where("district_id = ?", districtID).Order("name").Find(&taluks).Error
	return taluks, translate(err)
}

func (r *locationRepository) Villages(ctx context.Context, talukID uint) ([]model.Village, error) {
	var villages []model.Village
	err := r.db.WithContext(ctx).Where("taluk_id = ?", talukID).Order("name").Find(&villages).Error
	return villages, translate(err)
}
