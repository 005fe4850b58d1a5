package ports

import (
	"context"

	"frangodahora/internal/core/domain/model/marketplace"
)

// MarketplaceClient is the outbound contract to the marketplace API. Every
// call after Authenticate carries the bearer token it returned; tokens are
// establishment-scoped and short-lived, so the sync cycle authenticates at
// the start of each establishment's pass.
//
// Remote failures come back as RemoteAuthError or RemoteCallError. The one
// distinguished business outcome is ErrOrderNotPending from Confirm or
// Cancel: the order was already resolved on the marketplace side and the
// caller must reconcile locally instead of failing.
type MarketplaceClient interface {
	// Authenticate exchanges an establishment's developer token for a
	// bearer token.
	Authenticate(ctx context.Context, developerToken string) (string, error)

	// PendingOrders lists the orders awaiting a decision for an
	// establishment.
	PendingOrders(ctx context.Context, token string, remoteEstablishmentID int64) ([]marketplace.PendingOrder, error)

	// OrderDetails fetches the full payload of one order.
	OrderDetails(ctx context.Context, token string, code int64) (marketplace.RemoteOrder, error)

	// Confirm accepts a pending order on the marketplace.
	Confirm(ctx context.Context, token string, code int64) error

	// Cancel rejects a pending order on the marketplace with a customer
	// visible reason.
	Cancel(ctx context.Context, token string, code int64, reason string) error

	// StoreStatus reports whether an establishment's storefront is open.
	StoreStatus(ctx context.Context, token string, remoteEstablishmentID int64) (bool, error)

	// SetStoreStatus opens or closes an establishment's storefront.
	SetStoreStatus(ctx context.Context, token string, remoteEstablishmentID int64, open bool) error

	// SetDeliveryTime pushes the expected preparation time, in minutes, to
	// an establishment.
	SetDeliveryTime(ctx context.Context, token string, remoteEstablishmentID int64, minutes int) error
}
