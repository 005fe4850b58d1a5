package ports

// Event names broadcast by commands after a successful commit. Clients treat
// any event as "re-fetch what you display"; the name only hints at what
// changed.
const (
	EventOrdersChanged = "orders-changed"
	EventStockChanged  = "stock-changed"
	EventRidersChanged = "riders-changed"
)

// ChangeNotifier broadcasts change events to connected operator screens.
// Notify never blocks and never fails: a notification is advisory, losing
// one must not fail the business operation that triggered it.
type ChangeNotifier interface {
	Notify(event string)
}
