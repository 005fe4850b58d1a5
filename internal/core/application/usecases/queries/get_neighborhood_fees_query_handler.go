package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetNeighborhoodFeesQueryHandler lists the delivery-fee table.
type GetNeighborhoodFeesQueryHandler struct {
	db *gorm.DB
}

// NewGetNeighborhoodFeesQueryHandler creates a handler for fee-table reads.
func NewGetNeighborhoodFeesQueryHandler(db *gorm.DB) GetNeighborhoodFeesQueryHandler {
	return GetNeighborhoodFeesQueryHandler{db: db}
}

// Handle lists every known neighborhood with its fee.
func (h GetNeighborhoodFeesQueryHandler) Handle(
	ctx context.Context,
	query GetNeighborhoodFeesQuery,
) ([]GetNeighborhoodFeesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetNeighborhoodFeesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, fee
		FROM neighborhood_fees
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetNeighborhoodFeesQueryResponse
		if err = rows.Scan(&resp.Name, &resp.Fee); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
