package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"courierhub/internal/domain/model"
	"courierhub/internal/identity"
	repo "courierhub/internal/repository"
)

// ProfileUsecase is the profile directory: at most one sender profile and one
// traveller profile per identity.
type ProfileUsecase struct {
	senders    repo.SenderProfileRepository
	travellers repo.TravellerProfileRepository
}

func NewProfileUsecase(senders repo.SenderProfileRepository, travellers repo.TravellerProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{senders: senders, travellers: travellers}
}

type CreateSenderInput struct {
	Name  string
	Phone string
}

type CreateTravellerInput struct {
	Name       string
	Phone      string
	SourceCity string
	DestCity   string
}

func (u *ProfileUsecase) CreateSender(ctx context.Context, ident identity.Identity, in CreateSenderInput) (model.SenderProfile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.SenderProfile{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	_, found, err := u.senders.FindByIdentityRef(ctx, ident.ID)
	if err != nil {
		return model.SenderProfile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if found {
		return model.SenderProfile{}, NewHTTPError(http.StatusBadRequest, "sender profile already exists")
	}

	p := model.SenderProfile{
		IdentityRef: ident.ID,
		Name:        name,
		Email:       ident.Email,
		Phone:       strings.TrimSpace(in.Phone),
	}
	id, err := u.senders.Create(ctx, p)
	if err != nil {
		// unique index on identity_ref backstops the pre-check under
		// concurrent creates
		if errors.Is(err, repo.ErrDuplicate) {
			return model.SenderProfile{}, NewHTTPError(http.StatusBadRequest, "sender profile already exists")
		}
		return model.SenderProfile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.senders.FindByID(ctx, id)
	if err != nil {
		return model.SenderProfile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// ListSenders returns the caller's sender profile as a zero-or-one element
// slice, matching the collection shape of the route.
func (u *ProfileUsecase) ListSenders(ctx context.Context, ident identity.Identity) ([]model.SenderProfile, error) {
	p, found, err := u.senders.FindByIdentityRef(ctx, ident.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !found {
		return []model.SenderProfile{}, nil
	}
	return []model.SenderProfile{p}, nil
}

func (u *ProfileUsecase) CreateTraveller(ctx context.Context, ident identity.Identity, in CreateTravellerInput) (model.TravellerProfile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.TravellerProfile{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	sourceCity := strings.TrimSpace(in.SourceCity)
	destCity := strings.TrimSpace(in.DestCity)
	if sourceCity == "" || destCity == "" {
		return model.TravellerProfile{}, NewHTTPError(http.StatusBadRequest, "source_city and dest_city are required")
	}

	_, found, err := u.travellers.FindByIdentityRef(ctx, ident.ID)
	if err != nil {
		return model.TravellerProfile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if found {
		return model.TravellerProfile{}, NewHTTPError(http.StatusBadRequest, "traveller profile already exists")
	}

	p := model.TravellerProfile{
		IdentityRef: ident.ID,
		Name:        name,
		Email:       ident.Email,
		Phone:       strings.TrimSpace(in.Phone),
		SourceCity:  sourceCity,
		DestCity:    destCity,
	}
	id, err := u.travellers.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.TravellerProfile{}, NewHTTPError(http.StatusBadRequest, "traveller profile already exists")
		}
		return model.TravellerProfile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.travellers.FindByID(ctx, id)
	if err != nil {
		return model.TravellerProfile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ProfileUsecase) ListTravellers(ctx context.Context, ident identity.Identity) ([]model.TravellerProfile, error) {
	p, found, err := u.travellers.FindByIdentityRef(ctx, ident.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !found {
		return []model.TravellerProfile{}, nil
	}
	return []model.TravellerProfile{p}, nil
}
