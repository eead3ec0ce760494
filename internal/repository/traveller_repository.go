package repository

import (
	"context"

	"courierhub/internal/domain/model"
)

type TravellerProfileRepository interface {
	Create(ctx context.Context, p model.TravellerProfile) (int64, error)

	// FindByIdentityRef returns (profile, false, nil) when the identity has
	// no traveller profile.
	FindByIdentityRef(ctx context.Context, identityRef string) (model.TravellerProfile, bool, error)

	FindByID(ctx context.Context, id int64) (model.TravellerProfile, error)
}
