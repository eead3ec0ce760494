package repository

import (
	"context"
	"errors"

	"courierhub/internal/domain/model"
	repo "courierhub/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListPending(ctx context.Context, f repo.PendingOrderFilter) ([]model.Order, error) {
	q := r.db.WithContext(ctx).Where("status = ?", model.OrderStatusPending)

	if f.SourceCity != "" {
		q = q.Where("source_city = ?", f.SourceCity)
	}
	if f.DestCity != "" {
		q = q.Where("dest_city = ?", f.DestCity)
	}

	var items []model.Order
	if err := q.Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) ListByParticipant(ctx context.Context, senderID, travellerID *int64) ([]model.Order, error) {
	if senderID == nil && travellerID == nil {
		return []model.Order{}, nil
	}

	q := r.db.WithContext(ctx)
	switch {
	case senderID != nil && travellerID != nil:
		q = q.Where("sender_id = ? OR traveller_id = ?", *senderID, *travellerID)
	case senderID != nil:
		q = q.Where("sender_id = ?", *senderID)
	default:
		q = q.Where("traveller_id = ?", *travellerID)
	}

	var items []model.Order
	if err := q.Order("id desc").Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

// AssignTraveller is the accept compare-and-set. The WHERE clause carries the
// precondition, so two racing travellers can never both see RowsAffected == 1.
func (r *OrderGormRepository) AssignTraveller(ctx context.Context, orderID, travellerID int64) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND traveller_id IS NULL", orderID).
		Updates(map[string]interface{}{
			"traveller_id": travellerID,
			"status":       model.OrderStatusAccepted,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 0 rows means either the order is gone or someone else got there
		// first; look again to report which.
		var o model.Order
		err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}
		return repo.ErrAlreadyAssigned
	}
	return nil
}
