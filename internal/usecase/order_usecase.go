package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"courierhub/internal/domain/model"
	"courierhub/internal/geo"
	"courierhub/internal/identity"
	"courierhub/internal/pricing"
	repo "courierhub/internal/repository"
)

// OrderUsecase owns the order lifecycle: creation (pending), discovery, and
// the one-way accept transition.
type OrderUsecase struct {
	tx         repo.TransactionManager
	orders     repo.OrderRepository
	senders    repo.SenderProfileRepository
	travellers repo.TravellerProfileRepository
	pricer     *pricing.Engine
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	senders repo.SenderProfileRepository,
	travellers repo.TravellerProfileRepository,
	pricer *pricing.Engine,
) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, senders: senders, travellers: travellers, pricer: pricer}
}

type CreateOrderInput struct {
	SourceCity string
	DestCity   string
	WeightKg   float64
	ItemType   string

	// Client-supplied coordinates are advisory only: they are the fallback
	// for cities outside the known-city table and are ignored otherwise.
	SourceLat float64
	SourceLon float64
	DestLat   float64
	DestLon   float64
}

type QuoteInput struct {
	SourceCity string
	DestCity   string
	WeightKg   float64
	ItemType   string

	SourceLat float64
	SourceLon float64
	DestLat   float64
	DestLon   float64
}

type QuoteOutput struct {
	DistanceKm float64 `json:"distance_km"`
	Price      int64   `json:"price"`
}

type ListAvailableInput struct {
	SourceCity string
	DestCity   string
}

// Quote prices a route without creating anything. Pure: same inputs, same
// price.
func (u *OrderUsecase) Quote(ctx context.Context, in QuoteInput) (QuoteOutput, error) {
	if err := validateRoute(in.SourceCity, in.DestCity, in.WeightKg, in.ItemType); err != nil {
		return QuoteOutput{}, err
	}

	src := geo.Resolve(in.SourceCity, geo.Coord{Lat: in.SourceLat, Lon: in.SourceLon})
	dst := geo.Resolve(in.DestCity, geo.Coord{Lat: in.DestLat, Lon: in.DestLon})
	distance := geo.Distance(src, dst)

	return QuoteOutput{
		DistanceKm: distance,
		Price:      u.pricer.Quote(distance, in.WeightKg, in.ItemType),
	}, nil
}

func (u *OrderUsecase) CreateOrder(ctx context.Context, ident identity.Identity, in CreateOrderInput) (model.Order, error) {
	if err := validateRoute(in.SourceCity, in.DestCity, in.WeightKg, in.ItemType); err != nil {
		return model.Order{}, err
	}

	src := geo.Resolve(in.SourceCity, geo.Coord{Lat: in.SourceLat, Lon: in.SourceLon})
	dst := geo.Resolve(in.DestCity, geo.Coord{Lat: in.DestLat, Lon: in.DestLon})
	distance := geo.Distance(src, dst)
	price := u.pricer.Quote(distance, in.WeightKg, in.ItemType)

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		sender, found, err := r.Senders().FindByIdentityRef(ctx, ident.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !found {
			return NewHTTPError(http.StatusBadRequest, "create a sender profile first")
		}

		order := model.Order{
			SenderID:   sender.ID,
			SourceCity: strings.TrimSpace(in.SourceCity),
			DestCity:   strings.TrimSpace(in.DestCity),
			DistanceKm: distance,
			WeightKg:   in.WeightKg,
			ItemType:   in.ItemType,
			Status:     model.OrderStatusPending,
			Price:      price,
		}
		id, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = r.Orders().FindByID(ctx, id)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// ListAvailable is the unauthenticated browse listing: pending orders only,
// optional exact city filters. Result order is whatever the store returns.
func (u *OrderUsecase) ListAvailable(ctx context.Context, in ListAvailableInput) ([]model.Order, error) {
	items, err := u.orders.ListPending(ctx, repo.PendingOrderFilter{
		SourceCity: strings.TrimSpace(in.SourceCity),
		DestCity:   strings.TrimSpace(in.DestCity),
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// ListMine returns the union of orders the identity sent and orders it
// carries. An identity with neither profile simply sees an empty list.
func (u *OrderUsecase) ListMine(ctx context.Context, ident identity.Identity) ([]model.Order, error) {
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

	items, err := u.orders.ListByParticipant(ctx, senderID, travellerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// Accept transitions an order pending → accepted for the caller's traveller
// profile. The final assignment is a conditional update, so two racing
// travellers resolve to exactly one winner regardless of what the earlier
// reads saw.
func (u *OrderUsecase) Accept(ctx context.Context, ident identity.Identity, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		traveller, found, err := r.Travellers().FindByIdentityRef(ctx, ident.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !found {
			return NewHTTPError(http.StatusBadRequest, "create a traveller profile first")
		}

		order, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if order.TravellerID != nil {
			return NewHTTPError(http.StatusBadRequest, "order already accepted")
		}

		// a sender may not carry their own shipment, even if they also hold
		// a traveller profile
		if sender, found, err := r.Senders().FindByIdentityRef(ctx, ident.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		} else if found && sender.ID == order.SenderID {
			return NewHTTPError(http.StatusBadRequest, "cannot accept your own order")
		}

		err = r.Orders().AssignTraveller(ctx, orderID, traveller.ID)
		if errors.Is(err, repo.ErrAlreadyAssigned) {
			return NewHTTPError(http.StatusBadRequest, "order already accepted")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func validateRoute(sourceCity, destCity string, weightKg float64, itemType string) error {
	if strings.TrimSpace(sourceCity) == "" || strings.TrimSpace(destCity) == "" {
		return NewHTTPError(http.StatusBadRequest, "source_city and dest_city are required")
	}
	if weightKg <= 0 {
		return NewHTTPError(http.StatusBadRequest, "weight_kg must be positive")
	}
	if strings.TrimSpace(itemType) == "" {
		return NewHTTPError(http.StatusBadRequest, "item_type is required")
	}
	return nil
}
