package repository

import "context"

// TxRepos exposes the repositories bound to one transaction.
type TxRepos interface {
	Senders() SenderProfileRepository
	Travellers() TravellerProfileRepository
	Orders() OrderRepository
	Complaints() ComplaintRepository
}

// TransactionManager hides tx begin/commit/rollback from usecases. Profile
// lookups that gate a mutation run inside the same transaction as the
// mutation itself.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
