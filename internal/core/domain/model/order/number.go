package order

import "fmt"

// NumberFromSequence formats an allocated sequence value as the
// customer-facing order number, e.g. 42 -> "ORD-000042". Sequence values
// come from the order repository's atomic counter, which guarantees the
// numbers are unique and monotonically increasing in allocation order.
func NumberFromSequence(seq int64) string {
	return fmt.Sprintf("ORD-%06d", seq)
}
