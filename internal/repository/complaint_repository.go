package repository

import (
	"context"

	"courierhub/internal/domain/model"
)

type ComplaintRepository interface {
	Create(ctx context.Context, c model.Complaint) (int64, error)
	FindByID(ctx context.Context, id int64) (model.Complaint, error)
	ListByOrderIDs(ctx context.Context, orderIDs []int64) ([]model.Complaint, error)
}
