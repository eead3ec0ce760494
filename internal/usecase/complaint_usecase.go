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

// ComplaintUsecase is the append-only complaint ledger, restricted to the two
// participants of an order.
type ComplaintUsecase struct {
	tx         repo.TransactionManager
	complaints repo.ComplaintRepository
	orders     repo.OrderRepository
	senders    repo.SenderProfileRepository
	travellers repo.TravellerProfileRepository
}

func NewComplaintUsecase(
	tx repo.TransactionManager,
	complaints repo.ComplaintRepository,
	orders repo.OrderRepository,
	senders repo.SenderProfileRepository,
	travellers repo.TravellerProfileRepository,
) *ComplaintUsecase {
	return &ComplaintUsecase{tx: tx, complaints: complaints, orders: orders, senders: senders, travellers: travellers}
}

type FileComplaintInput struct {
	OrderID int64
	Issue   string
}

func (u *ComplaintUsecase) File(ctx context.Context, ident identity.Identity, in FileComplaintInput) (model.Complaint, error) {
	if in.OrderID <= 0 {
		return model.Complaint{}, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}
	issue := strings.TrimSpace(in.Issue)
	if issue == "" {
		return model.Complaint{}, NewHTTPError(http.StatusBadRequest, "issue is required")
	}

	var out model.Complaint
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, in.OrderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		participant, err := u.isParticipant(ctx, r, ident, order)
		if err != nil {
			return err
		}
		if !participant {
			return NewHTTPError(http.StatusForbidden, "forbidden")
		}

		id, err := r.Complaints().Create(ctx, model.Complaint{
			OrderID: order.ID,
			Issue:   issue,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = r.Complaints().FindByID(ctx, id)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return model.Complaint{}, err
	}
	return out, nil
}

// ListMine returns complaints across every order the identity participates
// in, as sender or as traveller.
func (u *ComplaintUsecase) ListMine(ctx context.Context, ident identity.Identity) ([]model.Complaint, error) {
	var senderID, travellerID *int64

	if sender, found, err := u.senders.FindByIdentityRef(ctx, ident.ID); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	} else if found {
		senderID = &sender.ID
	}
	if traveller, found, err := u.travellers.FindByIdentityRef(ctx, ident.ID); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	} else if found {
		travellerID = &traveller.ID
	}

	orders, err := u.orders.ListByParticipant(ctx, senderID, travellerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	items, err := u.complaints.ListByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ComplaintUsecase) isParticipant(ctx context.Context, r repo.TxRepos, ident identity.Identity, order model.Order) (bool, error) {
	if sender, found, err := r.Senders().FindByIdentityRef(ctx, ident.ID); err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	} else if found && sender.ID == order.SenderID {
		return true, nil
	}

	if order.TravellerID == nil {
		return false, nil
	}
	if traveller, found, err := r.Travellers().FindByIdentityRef(ctx, ident.ID); err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	} else if found && traveller.ID == *order.TravellerID {
		return true, nil
	}
	return false, nil
}
