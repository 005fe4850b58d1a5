package queries

import (
	"context"

	"frangodahora/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRiderRoutesQueryHandler assembles the day's dispatch view: every rider,
// what they carry, and the stops still ahead of them in position order.
type GetRiderRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderRoutesQueryHandler creates a handler for the dispatch view.
func NewGetRiderRoutesQueryHandler(db *gorm.DB) GetRiderRoutesQueryHandler {
	return GetRiderRoutesQueryHandler{db: db}
}

// Handle lists riders sorted by name, each with their in-route stops.
// Riders without stops still appear, so the operator sees who is free.
func (h GetRiderRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRiderRoutesQuery,
) ([]GetRiderRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders, err := h.listRiders(ctx, query)
	if err != nil {
		return nil, err
	}

	if err = h.attachRoutes(ctx, query, riders); err != nil {
		return nil, err
	}

	responses := make([]GetRiderRoutesQueryResponse, 0, len(riders))
	for _, r := range riders {
		responses = append(responses, *r)
	}
	return responses, nil
}

func (h GetRiderRoutesQueryHandler) listRiders(
	ctx context.Context,
	query GetRiderRoutesQuery,
) ([]*GetRiderRoutesQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT r.id, r.name, COALESCE(a.bag, 0) AS bag
		FROM riders r
		LEFT JOIN rider_assignments a ON a.rider_id = r.id AND a.day = ?
		ORDER BY r.name
	`, query.Day().Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]*GetRiderRoutesQueryResponse, 0)
	for rows.Next() {
		resp := &GetRiderRoutesQueryResponse{Route: make([]RouteStopResponse, 0)}
		if err = rows.Scan(&resp.RiderID, &resp.Name, &resp.Bag); err != nil {
			return nil, err
		}
		riders = append(riders, resp)
	}
	return riders, rows.Err()
}

func (h GetRiderRoutesQueryHandler) attachRoutes(
	ctx context.Context,
	query GetRiderRoutesQuery,
	riders []*GetRiderRoutesQueryResponse,
) error {
	byID := make(map[int64]*GetRiderRoutesQueryResponse, len(riders))
	for _, r := range riders {
		byID[r.RiderID] = r
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT rider_id, id, route_position, address, neighborhood, quantity, customer_name
		FROM orders
		WHERE day = ? AND status = ? AND rider_id IS NOT NULL
		ORDER BY rider_id, route_position
	`, query.Day().Time(), order.StatusInRoute).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var riderID int64
		var stop RouteStopResponse

		err = rows.Scan(
			&riderID,
			&stop.OrderID,
			&stop.RoutePosition,
			&stop.Address,
			&stop.Neighborhood,
			&stop.Quantity,
			&stop.CustomerName,
		)
		if err != nil {
			return err
		}

		if rider, ok := byID[riderID]; ok {
			rider.Route = append(rider.Route, stop)
		}
	}
	return rows.Err()
}
