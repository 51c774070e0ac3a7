package inventory

import (
	"context"
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Mock repositories

type mockCatalogRepo struct {
	items []Item
}

func (m *mockCatalogRepo) List(ctx context.Context) ([]Item, error) { return m.items, nil }

func (m *mockCatalogRepo) Append(ctx context.Context, item Item) error {
	m.items = append(m.items, item)
	return nil
}

func (m *mockCatalogRepo) Count(ctx context.Context) (int, error) { return len(m.items), nil }

type mockStockRepo struct {
	entries []StockEntry
}

func (m *mockStockRepo) List(ctx context.Context) ([]StockEntry, error) { return m.entries, nil }

func (m *mockStockRepo) Append(ctx context.Context, entry StockEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockStockRepo) FindByItemID(ctx context.Context, itemID string) (*StockEntry, error) {
	for _, e := range m.entries {
		if e.ItemID == itemID {
			found := e
			return &found, nil
		}
	}
	return nil, ErrItemNotFound
}

func (m *mockStockRepo) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	for i := range m.entries {
		if m.entries[i].ItemID == itemID {
			m.entries[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

type mockTransactionRepo struct {
	txs []Transaction
}

func (m *mockTransactionRepo) List(ctx context.Context) ([]Transaction, error) { return m.txs, nil }

func (m *mockTransactionRepo) Append(ctx context.Context, tx Transaction) error {
	m.txs = append(m.txs, tx)
	return nil
}

func (m *mockTransactionRepo) Count(ctx context.Context) (int, error) { return len(m.txs), nil }

func newTestService() (Service, *mockCatalogRepo, *mockStockRepo, *mockTransactionRepo) {
	catalog := &mockCatalogRepo{}
	stock := &mockStockRepo{}
	txs := &mockTransactionRepo{}
	logg := logrus.New()
	logg.SetOutput(io.Discard)
	return NewService(catalog, stock, txs, logg), catalog, stock, txs
}

func TestAddItem_SequentialIDs(t *testing.T) {
	svc, catalog, stock, _ := newTestService()

	for i, name := range []string{"Bolt", "Nut", "Washer"} {
		item, err := svc.AddItem(context.Background(), name)
		if err != nil {
			t.Fatalf("AddItem(%q) failed: %v", name, err)
		}
		want := strconv.Itoa(i + 1)
		if item.ItemID != want {
			t.Errorf("expected item id %s, got %s", want, item.ItemID)
		}
	}

	if len(catalog.items) != 3 {
		t.Errorf("expected 3 catalog rows, got %d", len(catalog.items))
	}
	if len(stock.entries) != 3 {
		t.Fatalf("expected 3 stock rows, got %d", len(stock.entries))
	}
	for _, e := range stock.entries {
		if e.Quantity != 0 {
			t.Errorf("expected initial quantity 0 for item %s, got %d", e.ItemID, e.Quantity)
		}
	}
}

func TestUpdateStock_Received(t *testing.T) {
	svc, _, stock, _ := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 10}}

	entry, err := svc.UpdateStock(context.Background(), "1", 5, TypeReceived)
	if err != nil {
		t.Fatalf("UpdateStock failed: %v", err)
	}
	if entry.Quantity != 15 {
		t.Errorf("expected quantity 15, got %d", entry.Quantity)
	}
	if stock.entries[0].Quantity != 15 {
		t.Errorf("expected stored quantity 15, got %d", stock.entries[0].Quantity)
	}
}

func TestUpdateStock_Sent(t *testing.T) {
	svc, _, stock, _ := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 10}}

	entry, err := svc.UpdateStock(context.Background(), "1", 4, TypeSent)
	if err != nil {
		t.Fatalf("UpdateStock failed: %v", err)
	}
	if entry.Quantity != 6 {
		t.Errorf("expected quantity 6, got %d", entry.Quantity)
	}
}

func TestUpdateStock_MayGoNegative(t *testing.T) {
	svc, _, stock, _ := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 2}}

	entry, err := svc.UpdateStock(context.Background(), "1", 5, TypeSent)
	if err != nil {
		t.Fatalf("UpdateStock failed: %v", err)
	}
	if entry.Quantity != -3 {
		t.Errorf("expected quantity -3, got %d", entry.Quantity)
	}
}

func TestUpdateStock_UnknownItem(t *testing.T) {
	svc, _, stock, _ := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 10}}

	_, err := svc.UpdateStock(context.Background(), "99", 5, TypeReceived)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if stock.entries[0].Quantity != 10 {
		t.Errorf("stock changed on unknown item: %d", stock.entries[0].Quantity)
	}
}

func TestUpdateStock_InvalidType(t *testing.T) {
	svc, _, stock, _ := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 10}}

	_, err := svc.UpdateStock(context.Background(), "1", 5, "Misplaced")
	if !errors.Is(err, ErrInvalidTransactionType) {
		t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
	}
	if stock.entries[0].Quantity != 10 {
		t.Errorf("stock changed on invalid type: %d", stock.entries[0].Quantity)
	}
}

func TestRecordTransaction_SentUpdatesStock(t *testing.T) {
	svc, _, stock, txs := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 10}}

	tx, err := svc.RecordTransaction(context.Background(), TransactionInput{
		Date:     "2026-08-31",
		ItemID:   "1",
		Quantity: 3,
		Type:     TypeSent,
		Price:    decimal.NewFromInt(2),
	})
	if err != nil {
		t.Fatalf("RecordTransaction failed: %v", err)
	}
	if tx.TransactionID != "1" {
		t.Errorf("expected transaction id 1, got %s", tx.TransactionID)
	}
	if stock.entries[0].Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", stock.entries[0].Quantity)
	}
	if len(txs.txs) != 1 {
		t.Errorf("expected 1 logged transaction, got %d", len(txs.txs))
	}
}

func TestRecordTransaction_SequentialIDs(t *testing.T) {
	svc, _, stock, txs := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 10}}
	txs.txs = []Transaction{{TransactionID: "1"}, {TransactionID: "2"}}

	tx, err := svc.RecordTransaction(context.Background(), TransactionInput{
		ItemID:   "1",
		Quantity: 1,
		Type:     TypeReceived,
	})
	if err != nil {
		t.Fatalf("RecordTransaction failed: %v", err)
	}
	if tx.TransactionID != "3" {
		t.Errorf("expected transaction id 3, got %s", tx.TransactionID)
	}
}

func TestRecordTransaction_NormalizesDates(t *testing.T) {
	svc, _, stock, txs := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 0}}

	_, err := svc.RecordTransaction(context.Background(), TransactionInput{
		Date:        "2026-08-31T10:15:00Z",
		InvoiceDate: "30/08/2026",
		ItemID:      "1",
		Quantity:    1,
		Type:        TypeReceived,
	})
	if err != nil {
		t.Fatalf("RecordTransaction failed: %v", err)
	}
	logged := txs.txs[0]
	if logged.Date != "2026-08-31" {
		t.Errorf("expected date 2026-08-31, got %s", logged.Date)
	}
	if logged.InvoiceDate != "2026-08-30" {
		t.Errorf("expected invoice date 2026-08-30, got %s", logged.InvoiceDate)
	}
}

func TestRecordTransaction_UnknownItemStillLogged(t *testing.T) {
	svc, _, stock, txs := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 10}}

	tx, err := svc.RecordTransaction(context.Background(), TransactionInput{
		ItemID:   "99",
		Quantity: 3,
		Type:     TypeSent,
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if tx == nil {
		t.Fatal("expected the logged transaction to be returned alongside the error")
	}
	if len(txs.txs) != 1 {
		t.Errorf("expected the transaction row to stay logged, got %d rows", len(txs.txs))
	}
	if stock.entries[0].Quantity != 10 {
		t.Errorf("stock changed for unrelated item: %d", stock.entries[0].Quantity)
	}
}

func TestRecordTransaction_InvalidTypeStillLogged(t *testing.T) {
	svc, _, stock, txs := newTestService()
	stock.entries = []StockEntry{{ItemID: "1", Name: "Bolt", Quantity: 10}}

	_, err := svc.RecordTransaction(context.Background(), TransactionInput{
		ItemID:   "1",
		Quantity: 3,
		Type:     "Misplaced",
	})
	if !errors.Is(err, ErrInvalidTransactionType) {
		t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
	}
	if len(txs.txs) != 1 {
		t.Errorf("expected the transaction row to stay logged, got %d rows", len(txs.txs))
	}
	if stock.entries[0].Quantity != 10 {
		t.Errorf("stock changed on invalid type: %d", stock.entries[0].Quantity)
	}
}

func TestListInventory_Empty(t *testing.T) {
	svc, _, _, _ := newTestService()

	entries, err := svc.ListInventory(context.Background())
	if err != nil {
		t.Fatalf("ListInventory failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty inventory, got %d entries", len(entries))
	}
}
