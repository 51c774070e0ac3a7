package inventory

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/orbitlabs/orbit-inventory/internal/spreadsheet"
)

// Column holding the quantity in the stock tab.
const stockQuantityCol = 3

// NewSheetRepositories builds the three repositories over one spreadsheet
// document. Works for any Document backend (Google Sheets, local workbook).
func NewSheetRepositories(doc spreadsheet.Document) (CatalogRepository, StockRepository, TransactionRepository) {
	return &sheetCatalogRepo{t: doc.Table(spreadsheet.TabItems)},
		&sheetStockRepo{t: doc.Table(spreadsheet.TabStock)},
		&sheetTransactionRepo{t: doc.Table(spreadsheet.TabTransactions)}
}

type sheetCatalogRepo struct {
	t spreadsheet.Table
}

func (r *sheetCatalogRepo) List(ctx context.Context) ([]Item, error) {
	rows, err := r.t.Rows(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{ItemID: cellAt(row, 0), Name: cellAt(row, 1)})
	}
	return items, nil
}

func (r *sheetCatalogRepo) Append(ctx context.Context, item Item) error {
	if err := r.t.AppendRow(ctx, []string{item.ItemID, item.Name}); err != nil {
		return storeError(err)
	}
	return nil
}

func (r *sheetCatalogRepo) Count(ctx context.Context) (int, error) {
	rows, err := r.t.Rows(ctx)
	if err != nil {
		return 0, storeError(err)
	}
	return len(rows), nil
}

type sheetStockRepo struct {
	t spreadsheet.Table
}

func (r *sheetStockRepo) List(ctx context.Context) ([]StockEntry, error) {
	rows, err := r.t.Rows(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	entries := make([]StockEntry, 0, len(rows))
	for _, row := range rows {
		qty, _ := strconv.Atoi(cellAt(row, 2))
		entries = append(entries, StockEntry{
			ItemID:   cellAt(row, 0),
			Name:     cellAt(row, 1),
			Quantity: qty,
		})
	}
	return entries, nil
}

func (r *sheetStockRepo) Append(ctx context.Context, entry StockEntry) error {
	row := []string{entry.ItemID, entry.Name, strconv.Itoa(entry.Quantity)}
	if err := r.t.AppendRow(ctx, row); err != nil {
		return storeError(err)
	}
	return nil
}

func (r *sheetStockRepo) FindByItemID(ctx context.Context, itemID string) (*StockEntry, error) {
	rowIdx, err := r.t.FindRow(ctx, 1, itemID)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrRowNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, storeError(err)
	}
	name, err := r.t.ReadCell(ctx, rowIdx, 2)
	if err != nil {
		return nil, storeError(err)
	}
	qtyStr, err := r.t.ReadCell(ctx, rowIdx, stockQuantityCol)
	if err != nil {
		return nil, storeError(err)
	}
	qty, _ := strconv.Atoi(qtyStr)
	return &StockEntry{ItemID: itemID, Name: name, Quantity: qty}, nil
}

func (r *sheetStockRepo) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	rowIdx, err := r.t.FindRow(ctx, 1, itemID)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrRowNotFound) {
			return ErrItemNotFound
		}
		return storeError(err)
	}
	if err := r.t.WriteCell(ctx, rowIdx, stockQuantityCol, strconv.Itoa(quantity)); err != nil {
		return storeError(err)
	}
	return nil
}

type sheetTransactionRepo struct {
	t spreadsheet.Table
}

func (r *sheetTransactionRepo) List(ctx context.Context) ([]Transaction, error) {
	rows, err := r.t.Rows(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	txs := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, transactionFromRow(row))
	}
	return txs, nil
}

func (r *sheetTransactionRepo) Append(ctx context.Context, tx Transaction) error {
	if err := r.t.AppendRow(ctx, transactionRow(tx)); err != nil {
		return storeError(err)
	}
	return nil
}

func (r *sheetTransactionRepo) Count(ctx context.Context) (int, error) {
	rows, err := r.t.Rows(ctx)
	if err != nil {
		return 0, storeError(err)
	}
	return len(rows), nil
}

// transactionRow flattens a transaction into the fixed 13-column layout.
func transactionRow(tx Transaction) []string {
	return []string{
		tx.TransactionID,
		tx.Date,
		tx.ItemID,
		strconv.Itoa(tx.Quantity),
		tx.Type,
		tx.Unit,
		tx.Manufacturer,
		tx.Supplier,
		tx.SupplierContact,
		tx.InvoiceNo,
		tx.InvoiceDate,
		tx.Price.String(),
		tx.Remarks,
	}
}

func transactionFromRow(row []string) Transaction {
	qty, _ := strconv.Atoi(cellAt(row, 3))
	price, err := decimal.NewFromString(cellAt(row, 11))
	if err != nil {
		price = decimal.Zero
	}
	return Transaction{
		TransactionID:   cellAt(row, 0),
		Date:            cellAt(row, 1),
		ItemID:          cellAt(row, 2),
		Quantity:        qty,
		Type:            cellAt(row, 4),
		Unit:            cellAt(row, 5),
		Manufacturer:    cellAt(row, 6),
		Supplier:        cellAt(row, 7),
		SupplierContact: cellAt(row, 8),
		InvoiceNo:       cellAt(row, 9),
		InvoiceDate:     cellAt(row, 10),
		Price:           price,
		Remarks:         cellAt(row, 12),
	}
}

// cellAt tolerates short rows; spreadsheet backends trim trailing blanks.
func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
