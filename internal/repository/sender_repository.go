package repository

import (
	"context"

	"courierhub/internal/domain/model"
)

type SenderProfileRepository interface {
	Create(ctx context.Context, p model.SenderProfile) (int64, error)

	// FindByIdentityRef returns (profile, false, nil) when the identity has
	// no sender profile; absence is a normal outcome, not an error.
	FindByIdentityRef(ctx context.Context, identityRef string) (model.SenderProfile, bool, error)

	FindByID(ctx context.Context, id int64) (model.SenderProfile, error)
}
