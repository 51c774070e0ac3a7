// Package spreadsheet provides row/cell level access to a spreadsheet-style
// document. Tables use 1-based row and column indices and row 1 is always the
// header row, matching how the backing documents are laid out.
package spreadsheet

import (
	"context"
	"errors"
)

// Tab names inside the inventory document.
const (
	TabItems        = "Items Database"
	TabTransactions = "Inventory Transactions"
	TabStock        = "Stock"
)

// Headers for each tab, used when a backend has to create the document.
var Headers = map[string][]string{
	TabItems: {"Item ID", "Item Name"},
	TabStock: {"Item ID", "Item Name", "Quantity"},
	TabTransactions: {
		"Transaction ID", "Date", "Item ID", "Quantity", "Transaction Type",
		"Unit", "Manufacturer", "Supplier", "Supplier Contact",
		"Invoice No", "Invoice Date", "Price", "Remarks",
	},
}

// TabOrder fixes tab creation order for backends that build the document.
var TabOrder = []string{TabItems, TabTransactions, TabStock}

// ErrRowNotFound is returned by FindRow when no data row matches.
var ErrRowNotFound = errors.New("row not found")

// Table is the full access contract the inventory repositories need: read all
// rows, append a row, find a row by key column, read a cell, write a cell.
type Table interface {
	// Rows returns every data row, header excluded, in document order.
	Rows(ctx context.Context) ([][]string, error)

	// AppendRow adds a row after the last occupied row.
	AppendRow(ctx context.Context, row []string) error

	// FindRow returns the absolute 1-based index of the first data row whose
	// cell in column col equals value, or ErrRowNotFound.
	FindRow(ctx context.Context, col int, value string) (int, error)

	// ReadCell returns the cell at the absolute 1-based row/column, empty
	// string for blank cells.
	ReadCell(ctx context.Context, row, col int) (string, error)

	// WriteCell overwrites the cell at the absolute 1-based row/column.
	WriteCell(ctx context.Context, row, col int, value string) error
}

// Document opens named tables of one spreadsheet document.
type Document interface {
	Table(name string) Table
}
