package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"courierhub/internal/identity"
	"courierhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileUsecase(s *memStore) *usecase.ProfileUsecase {
	return usecase.NewProfileUsecase(s.Senders(), s.Travellers())
}

func TestCreateSender_Success(t *testing.T) {
	s := newMemStore()
	uc := newProfileUsecase(s)
	ident := identity.Identity{ID: "user-1", Email: "asha@example.com"}

	created, err := uc.CreateSender(context.Background(), ident, usecase.CreateSenderInput{
		Name:  "  Asha ",
		Phone: "9999999999",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Asha", created.Name)
	assert.Equal(t, "asha@example.com", created.Email)
	assert.Equal(t, "user-1", created.IdentityRef)
}

func TestCreateSender_Duplicate(t *testing.T) {
	s := newMemStore()
	uc := newProfileUsecase(s)
	ident := identity.Identity{ID: "user-1"}

	_, err := uc.CreateSender(context.Background(), ident, usecase.CreateSenderInput{Name: "Asha"})
	require.NoError(t, err)

	_, err = uc.CreateSender(context.Background(), ident, usecase.CreateSenderInput{Name: "Asha again"})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCreateSender_NameRequired(t *testing.T) {
	uc := newProfileUsecase(newMemStore())
	_, err := uc.CreateSender(context.Background(), identity.Identity{ID: "user-1"}, usecase.CreateSenderInput{Name: "   "})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestListSenders_ZeroOrOne(t *testing.T) {
	s := newMemStore()
	uc := newProfileUsecase(s)
	ident := identity.Identity{ID: "user-1"}

	empty, err := uc.ListSenders(context.Background(), ident)
	require.NoError(t, err)
	assert.Empty(t, empty)

	created, err := uc.CreateSender(context.Background(), ident, usecase.CreateSenderInput{Name: "Asha"})
	require.NoError(t, err)

	one, err := uc.ListSenders(context.Background(), ident)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, created.ID, one[0].ID)

	// another identity's profile stays invisible
	other, err := uc.ListSenders(context.Background(), identity.Identity{ID: "user-2"})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCreateTraveller_Success(t *testing.T) {
	s := newMemStore()
	uc := newProfileUsecase(s)

	created, err := uc.CreateTraveller(context.Background(), identity.Identity{ID: "user-2", Email: "ravi@example.com"}, usecase.CreateTravellerInput{
		Name:       "Ravi",
		Phone:      "8888888888",
		SourceCity: "Mumbai",
		DestCity:   "Delhi",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Mumbai", created.SourceCity)
	assert.Equal(t, "Delhi", created.DestCity)
	assert.Equal(t, "ravi@example.com", created.Email)
}

func TestCreateTraveller_Duplicate(t *testing.T) {
	s := newMemStore()
	uc := newProfileUsecase(s)
	ident := identity.Identity{ID: "user-2"}
	in := usecase.CreateTravellerInput{Name: "Ravi", SourceCity: "Mumbai", DestCity: "Delhi"}

	_, err := uc.CreateTraveller(context.Background(), ident, in)
	require.NoError(t, err)

	_, err = uc.CreateTraveller(context.Background(), ident, in)
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCreateTraveller_RouteRequired(t *testing.T) {
	uc := newProfileUsecase(newMemStore())

	_, err := uc.CreateTraveller(context.Background(), identity.Identity{ID: "user-2"}, usecase.CreateTravellerInput{
		Name:     "Ravi",
		DestCity: "Delhi",
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestSenderAndTravellerProfilesAreIndependent(t *testing.T) {
	s := newMemStore()
	uc := newProfileUsecase(s)
	ident := identity.Identity{ID: "user-1"}

	_, err := uc.CreateSender(context.Background(), ident, usecase.CreateSenderInput{Name: "Asha"})
	require.NoError(t, err)

	_, err = uc.CreateTraveller(context.Background(), ident, usecase.CreateTravellerInput{
		Name:       "Asha",
		SourceCity: "Mumbai",
		DestCity:   "Pune",
	})
	require.NoError(t, err, "one identity may hold both profile kinds")
}
