package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound means a stock operation referenced an item id with no
	// stock entry. The item has to be added before transactions against it.
	ErrItemNotFound = errors.New("item not found in stock")

	// ErrInvalidTransactionType means the transaction type was neither
	// Received nor Sent.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrStoreUnavailable wraps I/O failures talking to a backing store. The
	// current operation aborts; there is no retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)

func storeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
