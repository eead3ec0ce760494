package repository

import (
	"context"

	repo "courierhub/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	senders    repo.SenderProfileRepository
	travellers repo.TravellerProfileRepository
	orders     repo.OrderRepository
	complaints repo.ComplaintRepository
}

func (r *txReposGorm) Senders() repo.SenderProfileRepository        { return r.senders }
func (r *txReposGorm) Travellers() repo.TravellerProfileRepository  { return r.travellers }
func (r *txReposGorm) Orders() repo.OrderRepository                 { return r.orders }
func (r *txReposGorm) Complaints() repo.ComplaintRepository         { return r.complaints }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := &txReposGorm{
			senders:    NewSenderGormRepository(tx),
			travellers: NewTravellerGormRepository(tx),
			orders:     NewOrderGormRepository(tx),
			complaints: NewComplaintGormRepository(tx),
		}
		return fn(r)
	})
}
