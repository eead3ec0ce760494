package repository

import (
	"context"
	"errors"

	"courierhub/internal/domain/model"
	repo "courierhub/internal/repository"

	"gorm.io/gorm"
)

type TravellerGormRepository struct {
	db *gorm.DB
}

func NewTravellerGormRepository(db *gorm.DB) *TravellerGormRepository {
	return &TravellerGormRepository{db: db}
}

func (r *TravellerGormRepository) Create(ctx context.Context, p model.TravellerProfile) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, repo.ErrDuplicate
		}
		return 0, err
	}
	return p.ID, nil
}

func (r *TravellerGormRepository) FindByIdentityRef(ctx context.Context, identityRef string) (model.TravellerProfile, bool, error) {
	var p model.TravellerProfile
	err := r.db.WithContext(ctx).
		Where("identity_ref = ?", identityRef).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TravellerProfile{}, false, nil
	}
	if err != nil {
		return model.TravellerProfile{}, false, err
	}
	return p, true, nil
}

func (r *TravellerGormRepository) FindByID(ctx context.Context, id int64) (model.TravellerProfile, error) {
	var p model.TravellerProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TravellerProfile{}, repo.ErrNotFound
	}
	if err != nil {
		return model.TravellerProfile{}, err
	}
	return p, nil
}
