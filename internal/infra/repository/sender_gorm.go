package repository

import (
	"context"
	"errors"

	"courierhub/internal/domain/model"
	repo "courierhub/internal/repository"

	"gorm.io/gorm"
)

type SenderGormRepository struct {
	db *gorm.DB
}

func NewSenderGormRepository(db *gorm.DB) *SenderGormRepository {
	return &SenderGormRepository{db: db}
}

func (r *SenderGormRepository) Create(ctx context.Context, p model.SenderProfile) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, repo.ErrDuplicate
		}
		return 0, err
	}
	return p.ID, nil
}

func (r *SenderGormRepository) FindByIdentityRef(ctx context.Context, identityRef string) (model.SenderProfile, bool, error) {
	var p model.SenderProfile
	err := r.db.WithContext(ctx).
		Where("identity_ref = ?", identityRef).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SenderProfile{}, false, nil
	}
	if err != nil {
		return model.SenderProfile{}, false, err
	}
	return p, true, nil
}

func (r *SenderGormRepository) FindByID(ctx context.Context, id int64) (model.SenderProfile, error) {
	var p model.SenderProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SenderProfile{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SenderProfile{}, err
	}
	return p, nil
}
