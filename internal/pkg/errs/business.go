package errs

import "fmt"

// ErrInsufficientStock is the sentinel for admission rejections caused by the
// day's depleted stock. It is a business outcome, not a system failure, and
// must never be retried automatically.
var ErrInsufficientStock = fmt.Errorf("insufficient stock")

// InsufficientStockError carries the quantity that was requested and how much
// actually remains, so callers can report the shortfall.
type InsufficientStockError struct {
	Requested float64
	Remaining float64
}

func NewInsufficientStockError(requested, remaining float64) *InsufficientStockError {
	return &InsufficientStockError{Requested: requested, Remaining: remaining}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: requested %.1f, remaining %.1f", ErrInsufficientStock, e.Requested, e.Remaining)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// ErrRemoteAuth is the sentinel for failed marketplace authentication.
// The affected establishment is skipped for the cycle; other establishments
// are unaffected.
var ErrRemoteAuth = fmt.Errorf("marketplace authentication failed")

// RemoteAuthError reports a failed login against the marketplace API.
type RemoteAuthError struct {
	Cause error
}

func NewRemoteAuthError(cause error) *RemoteAuthError {
	return &RemoteAuthError{Cause: cause}
}

func (e *RemoteAuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrRemoteAuth, sanitize(e.Cause))
	}
	return ErrRemoteAuth.Error()
}

func (e *RemoteAuthError) Unwrap() error {
	return ErrRemoteAuth
}

// ErrRemoteCall is the sentinel for marketplace API calls that failed or
// timed out.
var ErrRemoteCall = fmt.Errorf("marketplace call failed")

// RemoteCallError reports a failed marketplace API operation.
type RemoteCallError struct {
	Op    string
	Cause error
}

func NewRemoteCallError(op string, cause error) *RemoteCallError {
	return &RemoteCallError{Op: op, Cause: cause}
}

func (e *RemoteCallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrRemoteCall, e.Op, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrRemoteCall, e.Op)
}

func (e *RemoteCallError) Unwrap() error {
	return ErrRemoteCall
}

// ErrOrderNotPending signals that the marketplace reports an order as already
// resolved on its side. Callers treat it as a reconciliation hint rather than
// a failure: the local state is brought in line with the remote one.
var ErrOrderNotPending = fmt.Errorf("order is no longer pending on the marketplace")
