package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Handler exposes the inventory HTTP endpoints.
type Handler struct {
	service Service
	log     *logrus.Logger
}

func NewHandler(service Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/items", h.listItems)
		r.Post("/items", h.addItem)
		r.Get("/inventory", h.listInventory)
		r.Get("/inventory/export", h.exportInventory)
		r.Get("/transactions", h.listTransactions)
		r.Post("/transactions", h.recordTransaction)
	})
}

type addItemRequest struct {
	Name string `json:"name"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	item, err := h.service.AddItem(r.Context(), req.Name)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	respond(w, http.StatusCreated, item)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	if items == nil {
		items = []Item{}
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListInventory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	if entries == nil {
		entries = []StockEntry{}
	}
	respond(w, http.StatusOK, entries)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.service.ListTransactions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	if txs == nil {
		txs = []Transaction{}
	}
	respond(w, http.StatusOK, txs)
}

type recordResponse struct {
	Transaction *Transaction `json:"transaction,omitempty"`
	Error       string       `json:"error,omitempty"`
}

func (h *Handler) recordTransaction(w http.ResponseWriter, r *http.Request) {
	var in TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if in.ItemID == "" && in.ItemName != "" {
		id, err := h.resolveItemID(r, in.ItemName)
		if err != nil {
			http.Error(w, err.Error(), statusForError(err))
			return
		}
		in.ItemID = id
	}

	tx, err := h.service.RecordTransaction(r.Context(), in)
	if err != nil {
		// tx is non-nil when the row was logged before the stock update
		// failed; include it so the caller sees the partial outcome.
		respond(w, statusForError(err), recordResponse{
			Transaction: tx,
			Error:       err.Error(),
		})
		return
	}
	respond(w, http.StatusCreated, recordResponse{Transaction: tx})
}

// resolveItemID does the name-based lookup the form UI relies on: a linear
// scan over the catalog, first match wins. Assumes unique names.
func (h *Handler) resolveItemID(r *http.Request, name string) (string, error) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		return "", err
	}
	for _, it := range items {
		if it.Name == name {
			return it.ItemID, nil
		}
	}
	return "", ErrItemNotFound
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrItemNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidTransactionType):
		return http.StatusBadRequest
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
