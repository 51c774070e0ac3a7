package inventory

import "context"

// CatalogRepository holds (item_id, name) records. Append-only.
type CatalogRepository interface {
	List(ctx context.Context) ([]Item, error)
	Append(ctx context.Context, item Item) error
	Count(ctx context.Context) (int, error)
}

// StockRepository holds one quantity row per item.
type StockRepository interface {
	List(ctx context.Context) ([]StockEntry, error)
	Append(ctx context.Context, entry StockEntry) error
	// FindByItemID returns ErrItemNotFound when the item has no stock row.
	FindByItemID(ctx context.Context, itemID string) (*StockEntry, error)
	// SetQuantity overwrites the quantity of an existing stock row.
	SetQuantity(ctx context.Context, itemID string, quantity int) error
}

// TransactionRepository is the append-only transaction log.
type TransactionRepository interface {
	List(ctx context.Context) ([]Transaction, error)
	Append(ctx context.Context, tx Transaction) error
	Count(ctx context.Context) (int, error)
}
