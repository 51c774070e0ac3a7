package inventory

import (
	"context"
	"database/sql"
	"errors"
)

// EnsureSchema creates the three inventory tables when they do not exist.
// Column order mirrors the spreadsheet layout; dates stay textual YYYY-MM-DD
// so both store families hold identical values.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS items (
			item_id    TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW())`,
		`CREATE TABLE IF NOT EXISTS stock (
			item_id    TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			quantity   INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW())`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id   TEXT PRIMARY KEY,
			date             TEXT NOT NULL,
			item_id          TEXT NOT NULL,
			quantity         INTEGER NOT NULL,
			type             TEXT NOT NULL,
			unit             TEXT NOT NULL DEFAULT '',
			manufacturer     TEXT NOT NULL DEFAULT '',
			supplier         TEXT NOT NULL DEFAULT '',
			supplier_contact TEXT NOT NULL DEFAULT '',
			invoice_no       TEXT NOT NULL DEFAULT '',
			invoice_date     TEXT NOT NULL DEFAULT '',
			price            NUMERIC NOT NULL DEFAULT 0,
			remarks          TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW())`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

type pgCatalogRepo struct{ db *sql.DB }

func NewCatalogPostgresRepository(db *sql.DB) CatalogRepository { return &pgCatalogRepo{db: db} }

func (r *pgCatalogRepo) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT item_id, name FROM items ORDER BY created_at, item_id`)
	if err != nil {
		return nil, storeError(err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ItemID, &it.Name); err != nil {
			return nil, storeError(err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *pgCatalogRepo) Append(ctx context.Context, item Item) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (item_id, name) VALUES ($1, $2)`, item.ItemID, item.Name)
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (r *pgCatalogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, storeError(err)
	}
	return n, nil
}

type pgStockRepo struct{ db *sql.DB }

func NewStockPostgresRepository(db *sql.DB) StockRepository { return &pgStockRepo{db: db} }

func (r *pgStockRepo) List(ctx context.Context) ([]StockEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT item_id, name, quantity FROM stock ORDER BY created_at, item_id`)
	if err != nil {
		return nil, storeError(err)
	}
	defer rows.Close()

	var entries []StockEntry
	for rows.Next() {
		var e StockEntry
		if err := rows.Scan(&e.ItemID, &e.Name, &e.Quantity); err != nil {
			return nil, storeError(err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *pgStockRepo) Append(ctx context.Context, entry StockEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stock (item_id, name, quantity) VALUES ($1, $2, $3)`,
		entry.ItemID, entry.Name, entry.Quantity)
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (r *pgStockRepo) FindByItemID(ctx context.Context, itemID string) (*StockEntry, error) {
	e := &StockEntry{}
	err := r.db.QueryRowContext(ctx,
		`SELECT item_id, name, quantity FROM stock WHERE item_id=$1`, itemID).
		Scan(&e.ItemID, &e.Name, &e.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, storeError(err)
	}
	return e, nil
}

func (r *pgStockRepo) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE stock SET quantity=$2 WHERE item_id=$1`, itemID, quantity)
	if err != nil {
		return storeError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrItemNotFound
	}
	return nil
}

type pgTransactionRepo struct{ db *sql.DB }

func NewTransactionPostgresRepository(db *sql.DB) TransactionRepository {
	return &pgTransactionRepo{db: db}
}

const txColumns = `transaction_id, date, item_id, quantity, type, unit, manufacturer,
	supplier, supplier_contact, invoice_no, invoice_date, price, remarks`

func (r *pgTransactionRepo) List(ctx context.Context) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+txColumns+` FROM transactions ORDER BY created_at, transaction_id`)
	if err != nil {
		return nil, storeError(err)
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		var tx Transaction
		err := rows.Scan(&tx.TransactionID, &tx.Date, &tx.ItemID, &tx.Quantity, &tx.Type,
			&tx.Unit, &tx.Manufacturer, &tx.Supplier, &tx.SupplierContact,
			&tx.InvoiceNo, &tx.InvoiceDate, &tx.Price, &tx.Remarks)
		if err != nil {
			return nil, storeError(err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *pgTransactionRepo) Append(ctx context.Context, tx Transaction) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (`+txColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		tx.TransactionID, tx.Date, tx.ItemID, tx.Quantity, tx.Type,
		tx.Unit, tx.Manufacturer, tx.Supplier, tx.SupplierContact,
		tx.InvoiceNo, tx.InvoiceDate, tx.Price, tx.Remarks)
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (r *pgTransactionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, storeError(err)
	}
	return n, nil
}
