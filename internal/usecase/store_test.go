package usecase_test

import (
	"context"
	"sync"
	"testing"

	"courierhub/internal/domain/model"
	repo "courierhub/internal/repository"
	"courierhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory stand-in for the postgres repositories. It keeps
// the same contracts, including the conditional-update semantics of
// AssignTraveller, so the accept race can be exercised for real.
type memStore struct {
	mu sync.Mutex

	senders    map[int64]model.SenderProfile
	travellers map[int64]model.TravellerProfile
	orders     map[int64]model.Order
	complaints map[int64]model.Complaint
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{
		senders:    make(map[int64]model.SenderProfile),
		travellers: make(map[int64]model.TravellerProfile),
		orders:     make(map[int64]model.Order),
		complaints: make(map[int64]model.Complaint),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) Senders() repo.SenderProfileRepository       { return &memSenderRepo{s} }
func (s *memStore) Travellers() repo.TravellerProfileRepository { return &memTravellerRepo{s} }
func (s *memStore) Orders() repo.OrderRepository                { return &memOrderRepo{s} }
func (s *memStore) Complaints() repo.ComplaintRepository        { return &memComplaintRepo{s} }

// memTx runs the callback against the shared store. Good enough for unit
// tests: the store's own locking provides the atomicity the real transaction
// would.
type memTx struct {
	store *memStore
}

func (t *memTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t.store)
}

type memSenderRepo struct{ s *memStore }

func (r *memSenderRepo) Create(ctx context.Context, p model.SenderProfile) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.senders {
		if existing.IdentityRef == p.IdentityRef {
			return 0, repo.ErrDuplicate
		}
	}
	p.ID = r.s.id()
	r.s.senders[p.ID] = p
	return p.ID, nil
}

func (r *memSenderRepo) FindByIdentityRef(ctx context.Context, ref string) (model.SenderProfile, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.senders {
		if p.IdentityRef == ref {
			return p, true, nil
		}
	}
	return model.SenderProfile{}, false, nil
}

func (r *memSenderRepo) FindByID(ctx context.Context, id int64) (model.SenderProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.senders[id]
	if !ok {
		return model.SenderProfile{}, repo.ErrNotFound
	}
	return p, nil
}

type memTravellerRepo struct{ s *memStore }

func (r *memTravellerRepo) Create(ctx context.Context, p model.TravellerProfile) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.travellers {
		if existing.IdentityRef == p.IdentityRef {
			return 0, repo.ErrDuplicate
		}
	}
	p.ID = r.s.id()
	r.s.travellers[p.ID] = p
	return p.ID, nil
}

func (r *memTravellerRepo) FindByIdentityRef(ctx context.Context, ref string) (model.TravellerProfile, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.travellers {
		if p.IdentityRef == ref {
			return p, true, nil
		}
	}
	return model.TravellerProfile{}, false, nil
}

func (r *memTravellerRepo) FindByID(ctx context.Context, id int64) (model.TravellerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.travellers[id]
	if !ok {
		return model.TravellerProfile{}, repo.ErrNotFound
	}
	return p, nil
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(ctx context.Context, order model.Order) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order.ID = r.s.id()
	r.s.orders[order.ID] = order
	return order.ID, nil
}

func (r *memOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (r *memOrderRepo) ListPending(ctx context.Context, f repo.PendingOrderFilter) ([]model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Order{}
	for _, o := range r.s.orders {
		if o.Status != model.OrderStatusPending {
			continue
		}
		if f.SourceCity != "" && o.SourceCity != f.SourceCity {
			continue
		}
		if f.DestCity != "" && o.DestCity != f.DestCity {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepo) ListByParticipant(ctx context.Context, senderID, travellerID *int64) ([]model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Order{}
	for _, o := range r.s.orders {
		if senderID != nil && o.SenderID == *senderID {
			out = append(out, o)
			continue
		}
		if travellerID != nil && o.TravellerID != nil && *o.TravellerID == *travellerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) AssignTraveller(ctx context.Context, orderID, travellerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	if o.TravellerID != nil {
		return repo.ErrAlreadyAssigned
	}
	o.TravellerID = &travellerID
	o.Status = model.OrderStatusAccepted
	r.s.orders[orderID] = o
	return nil
}

type memComplaintRepo struct{ s *memStore }

func (r *memComplaintRepo) Create(ctx context.Context, c model.Complaint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.id()
	r.s.complaints[c.ID] = c
	return c.ID, nil
}

func (r *memComplaintRepo) FindByID(ctx context.Context, id int64) (model.Complaint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.complaints[id]
	if !ok {
		return model.Complaint{}, repo.ErrNotFound
	}
	return c, nil
}

func (r *memComplaintRepo) ListByOrderIDs(ctx context.Context, orderIDs []int64) ([]model.Complaint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[int64]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	out := []model.Complaint{}
	for _, c := range r.s.complaints {
		if wanted[c.OrderID] {
			out = append(out, c)
		}
	}
	return out, nil
}

// seed helpers

func seedSender(t *testing.T, s *memStore, identityRef, name string) model.SenderProfile {
	t.Helper()
	id, err := s.Senders().Create(context.Background(), model.SenderProfile{
		IdentityRef: identityRef,
		Name:        name,
	})
	require.NoError(t, err)
	p, err := s.Senders().FindByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func seedTraveller(t *testing.T, s *memStore, identityRef, name string) model.TravellerProfile {
	t.Helper()
	id, err := s.Travellers().Create(context.Background(), model.TravellerProfile{
		IdentityRef: identityRef,
		Name:        name,
		SourceCity:  "Mumbai",
		DestCity:    "Delhi",
	})
	require.NoError(t, err)
	p, err := s.Travellers().FindByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func seedOrder(t *testing.T, s *memStore, o model.Order) model.Order {
	t.Helper()
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	id, err := s.Orders().Create(context.Background(), o)
	require.NoError(t, err)
	created, err := s.Orders().FindByID(context.Background(), id)
	require.NoError(t, err)
	return created
}

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected usecase.HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
}
