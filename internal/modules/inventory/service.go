package inventory

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Service is the inventory business logic: item creation, transaction
// recording and the derived stock levels.
//
// Item and transaction ids are assigned by counting existing rows, the same
// scheme the backing spreadsheet uses. That is only safe with a single
// writer; this service assumes one.
type Service interface {
	AddItem(ctx context.Context, name string) (*Item, error)
	RecordTransaction(ctx context.Context, in TransactionInput) (*Transaction, error)
	UpdateStock(ctx context.Context, itemID string, quantity int, txType string) (*StockEntry, error)
	ListInventory(ctx context.Context) ([]StockEntry, error)
	ListItems(ctx context.Context) ([]Item, error)
	ListTransactions(ctx context.Context) ([]Transaction, error)
}

type service struct {
	catalog      CatalogRepository
	stock        StockRepository
	transactions TransactionRepository
	log          *logrus.Logger
}

// NewService creates the inventory service over the three stores.
func NewService(catalog CatalogRepository, stock StockRepository, transactions TransactionRepository, log *logrus.Logger) Service {
	return &service{
		catalog:      catalog,
		stock:        stock,
		transactions: transactions,
		log:          log,
	}
}

// AddItem appends the item to the catalog and opens its stock row at
// quantity 0.
func (s *service) AddItem(ctx context.Context, name string) (*Item, error) {
	count, err := s.catalog.Count(ctx)
	if err != nil {
		return nil, err
	}
	item := Item{ItemID: strconv.Itoa(count + 1), Name: name}

	if err := s.catalog.Append(ctx, item); err != nil {
		return nil, err
	}
	if err := s.stock.Append(ctx, StockEntry{ItemID: item.ItemID, Name: item.Name, Quantity: 0}); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"item_id": item.ItemID,
		"name":    item.Name,
	}).Info("item added to catalog")
	return &item, nil
}

// RecordTransaction normalizes the date fields, appends the transaction to
// the log and then applies the stock update.
//
// The log append and the stock update are two separate writes. When the
// stock update fails (unknown item, invalid type) the transaction row has
// already been logged and stays in place; in that case the recorded
// transaction is returned together with the error so callers can surface
// the partial outcome.
func (s *service) RecordTransaction(ctx context.Context, in TransactionInput) (*Transaction, error) {
	count, err := s.transactions.Count(ctx)
	if err != nil {
		return nil, err
	}

	tx := Transaction{
		TransactionID:   strconv.Itoa(count + 1),
		Date:            NormalizeDate(in.Date),
		ItemID:          in.ItemID,
		Quantity:        in.Quantity,
		Type:            in.Type,
		Unit:            in.Unit,
		Manufacturer:    in.Manufacturer,
		Supplier:        in.Supplier,
		SupplierContact: in.SupplierContact,
		InvoiceNo:       in.InvoiceNo,
		InvoiceDate:     NormalizeDate(in.InvoiceDate),
		Price:           in.Price,
		Remarks:         in.Remarks,
	}

	if err := s.transactions.Append(ctx, tx); err != nil {
		return nil, err
	}

	if _, err := s.UpdateStock(ctx, tx.ItemID, tx.Quantity, tx.Type); err != nil {
		s.log.WithFields(logrus.Fields{
			"transaction_id": tx.TransactionID,
			"item_id":        tx.ItemID,
		}).WithError(err).Warn("stock update failed after transaction was logged")
		return &tx, err
	}

	s.log.WithFields(logrus.Fields{
		"transaction_id": tx.TransactionID,
		"item_id":        tx.ItemID,
		"type":           tx.Type,
		"quantity":       tx.Quantity,
	}).Info("transaction recorded")
	return &tx, nil
}

// UpdateStock applies one transaction to the item's stock row: Received adds
// the quantity, Sent subtracts it. Quantities may go negative. Nothing is
// written when the item is unknown or the type is invalid.
func (s *service) UpdateStock(ctx context.Context, itemID string, quantity int, txType string) (*StockEntry, error) {
	entry, err := s.stock.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var newQuantity int
	switch txType {
	case TypeReceived:
		newQuantity = entry.Quantity + quantity
	case TypeSent:
		newQuantity = entry.Quantity - quantity
	default:
		return nil, ErrInvalidTransactionType
	}

	if err := s.stock.SetQuantity(ctx, itemID, newQuantity); err != nil {
		return nil, err
	}
	entry.Quantity = newQuantity

	s.log.WithFields(logrus.Fields{
		"item_id":  itemID,
		"quantity": newQuantity,
	}).Info("stock updated")
	return entry, nil
}

func (s *service) ListInventory(ctx context.Context) ([]StockEntry, error) {
	return s.stock.List(ctx)
}

func (s *service) ListItems(ctx context.Context) ([]Item, error) {
	return s.catalog.List(ctx)
}

func (s *service) ListTransactions(ctx context.Context) ([]Transaction, error) {
	return s.transactions.List(ctx)
}
