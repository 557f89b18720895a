package order

// Order statuses. The flow is forward-only: pending, confirmed, preparing,
// delivered. Cancellation is allowed from any non-terminal status.
// delivered and cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Payment statuses. Settable independently of the order status.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

var validNext = map[string]map[string]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusPreparing: true, StatusCancelled: true},
	StatusPreparing: {StatusDelivered: true, StatusCancelled: true},
	StatusDelivered: {},
	StatusCancelled: {},
}

// CanTransition reports whether an order may move from one status to
// another. Repeating the current status is rejected like any other
// non-forward transition.
func CanTransition(from, to string) bool {
	return validNext[from][to]
}

func ValidStatus(status string) bool {
	_, ok := validNext[status]
	return ok
}

func ValidPaymentStatus(status string) bool {
	return status == PaymentPending || status == PaymentCompleted || status == PaymentFailed
}
