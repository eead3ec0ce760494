package repository

import (
	"context"
	"errors"

	"courierhub/internal/domain/model"
	repo "courierhub/internal/repository"

	"gorm.io/gorm"
)

type ComplaintGormRepository struct {
	db *gorm.DB
}

func NewComplaintGormRepository(db *gorm.DB) *ComplaintGormRepository {
	return &ComplaintGormRepository{db: db}
}

func (r *ComplaintGormRepository) Create(ctx context.Context, c model.Complaint) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *ComplaintGormRepository) FindByID(ctx context.Context, id int64) (model.Complaint, error) {
	var c model.Complaint
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Complaint{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintGormRepository) ListByOrderIDs(ctx context.Context, orderIDs []int64) ([]model.Complaint, error) {
	if len(orderIDs) == 0 {
		return []model.Complaint{}, nil
	}

	var items []model.Complaint
	err := r.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Complaint{}, err
	}
	return items, nil
}
