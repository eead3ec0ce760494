package repository

import (
	"context"

	"courierhub/internal/domain/model"
)

// PendingOrderFilter narrows the browse listing. Empty fields match all;
// city names are compared exactly.
type PendingOrderFilter struct {
	SourceCity string
	DestCity   string
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// ListPending returns pending orders only. Result order is
	// storage-native; callers must not rely on it.
	ListPending(ctx context.Context, f PendingOrderFilter) ([]model.Order, error)

	// ListByParticipant returns orders where the given sender profile is the
	// requester or the given traveller profile is the carrier. A nil id
	// skips that side of the union.
	ListByParticipant(ctx context.Context, senderID, travellerID *int64) ([]model.Order, error)

	// AssignTraveller performs the pending → accepted transition as a
	// conditional update: it succeeds only if the order exists and its
	// traveller_id is still NULL. Returns ErrNotFound if the order does not
	// exist and ErrAlreadyAssigned if another traveller won the race.
	AssignTraveller(ctx context.Context, orderID, travellerID int64) error
}
