package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetEstablishmentsQueryHandler lists establishment registrations.
type GetEstablishmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetEstablishmentsQueryHandler creates a handler for establishment reads.
func NewGetEstablishmentsQueryHandler(db *gorm.DB) GetEstablishmentsQueryHandler {
	return GetEstablishmentsQueryHandler{db: db}
}

// Handle lists every establishment, credentials excluded.
func (h GetEstablishmentsQueryHandler) Handle(
	ctx context.Context,
	query GetEstablishmentsQuery,
) ([]GetEstablishmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetEstablishmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, remote_id, name, active, auto_close_store, auto_reject_orders
		FROM establishments
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetEstablishmentsQueryResponse
		err = rows.Scan(
			&resp.ID,
			&resp.RemoteID,
			&resp.Name,
			&resp.Active,
			&resp.AutoCloseStore,
			&resp.AutoRejectOrders,
		)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
