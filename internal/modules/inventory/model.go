package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. Anything else is rejected by UpdateStock.
const (
	TypeReceived = "Received"
	TypeSent     = "Sent"
)

// Item is one catalog record. Items are never mutated or deleted.
type Item struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// StockEntry is the running stock level for one item. Name is a denormalized
// copy of the catalog name; Quantity is the only field that ever changes.
type StockEntry struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Transaction is one immutable row of the transaction log. Field order
// matches the 13-column store schema.
type Transaction struct {
	TransactionID   string          `json:"transaction_id"`
	Date            string          `json:"date"`
	ItemID          string          `json:"item_id"`
	Quantity        int             `json:"quantity"`
	Type            string          `json:"type"`
	Unit            string          `json:"unit,omitempty"`
	Manufacturer    string          `json:"manufacturer,omitempty"`
	Supplier        string          `json:"supplier,omitempty"`
	SupplierContact string          `json:"supplier_contact,omitempty"`
	InvoiceNo       string          `json:"invoice_no,omitempty"`
	InvoiceDate     string          `json:"invoice_date,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Remarks         string          `json:"remarks,omitempty"`
}

// TransactionInput holds a transaction to record, minus the id the service
// assigns. ItemName may be set instead of ItemID by form callers; the
// presentation layer resolves it before the input reaches the service.
type TransactionInput struct {
	ItemName        string          `json:"item_name,omitempty"`
	Date            string          `json:"date"`
	ItemID          string          `json:"item_id"`
	Quantity        int             `json:"quantity"`
	Type            string          `json:"type"`
	Unit            string          `json:"unit,omitempty"`
	Manufacturer    string          `json:"manufacturer,omitempty"`
	Supplier        string          `json:"supplier,omitempty"`
	SupplierContact string          `json:"supplier_contact,omitempty"`
	InvoiceNo       string          `json:"invoice_no,omitempty"`
	InvoiceDate     string          `json:"invoice_date,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Remarks         string          `json:"remarks,omitempty"`
}

const dateFormat = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// NormalizeDate renders recognised date values as YYYY-MM-DD before they are
// persisted. Values already in that form, and strings no known layout
// matches, pass through unchanged.
func NormalizeDate(s string) string {
	if s == "" {
		return s
	}
	if _, err := time.Parse(dateFormat, s); err == nil {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateFormat)
		}
	}
	return s
}
