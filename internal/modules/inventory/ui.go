package inventory

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// The form UI: one page with three tabs, mirroring the original entry form
// (Add Transaction / View Inventory / Add Item). Form posts redirect back to
// the page with a flash message.

func (h *Handler) RegisterUI(r *chi.Mux) {
	r.Get("/", h.uiPage)
	r.Post("/ui/transactions", h.uiRecordTransaction)
	r.Post("/ui/items", h.uiAddItem)
}

type uiData struct {
	Tab       string
	Message   string
	Error     string
	Items     []Item
	Inventory []StockEntry
	Today     string
}

func (h *Handler) uiPage(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	switch tab {
	case "inventory", "items":
	default:
		tab = "transaction"
	}

	data := uiData{
		Tab:     tab,
		Message: r.URL.Query().Get("msg"),
		Error:   r.URL.Query().Get("err"),
		Today:   time.Now().Format(dateFormat),
	}

	var err error
	switch tab {
	case "transaction":
		data.Items, err = h.service.ListItems(r.Context())
	case "inventory":
		data.Inventory, err = h.service.ListInventory(r.Context())
	}
	if err != nil {
		data.Error = err.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := uiTmpl.Execute(w, data); err != nil {
		h.log.WithError(err).Error("failed to render ui page")
	}
}

func (h *Handler) uiAddItem(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	if name == "" {
		redirectFlash(w, r, "items", "", "Item name is required.")
		return
	}
	item, err := h.service.AddItem(r.Context(), name)
	if err != nil {
		redirectFlash(w, r, "items", "", err.Error())
		return
	}
	redirectFlash(w, r, "items", "Item '"+item.Name+"' added with ID "+item.ItemID+".", "")
}

func (h *Handler) uiRecordTransaction(w http.ResponseWriter, r *http.Request) {
	quantity, _ := strconv.Atoi(r.FormValue("quantity"))
	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		price = decimal.Zero
	}

	in := TransactionInput{
		ItemName:        r.FormValue("item_name"),
		Date:            r.FormValue("date"),
		Quantity:        quantity,
		Type:            r.FormValue("type"),
		Unit:            r.FormValue("unit"),
		Manufacturer:    r.FormValue("manufacturer"),
		Supplier:        r.FormValue("supplier"),
		SupplierContact: r.FormValue("supplier_contact"),
		InvoiceNo:       r.FormValue("invoice_no"),
		InvoiceDate:     r.FormValue("invoice_date"),
		Price:           price,
		Remarks:         r.FormValue("remarks"),
	}

	// Name to id resolution happens here, not in the service.
	id, err := h.resolveItemID(r, in.ItemName)
	if err != nil {
		redirectFlash(w, r, "transaction", "", "Item '"+in.ItemName+"' not found. Please add the item first.")
		return
	}
	in.ItemID = id

	tx, err := h.service.RecordTransaction(r.Context(), in)
	if err != nil {
		msg := err.Error()
		if tx != nil {
			msg = "Transaction " + tx.TransactionID + " was recorded, but the stock update failed: " + msg
		}
		redirectFlash(w, r, "transaction", "", msg)
		return
	}
	redirectFlash(w, r, "transaction", "Transaction "+tx.TransactionID+" recorded.", "")
}

func redirectFlash(w http.ResponseWriter, r *http.Request, tab, msg, errMsg string) {
	q := url.Values{}
	q.Set("tab", tab)
	if msg != "" {
		q.Set("msg", msg)
	}
	if errMsg != "" {
		q.Set("err", errMsg)
	}
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

var uiTmpl = template.Must(template.New("ui").Parse(uiPageHTML))

const uiPageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Orbit Inventory Management</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2em auto; }
nav a { margin-right: 1em; }
nav a.active { font-weight: bold; }
label { display: block; margin-top: .6em; }
input, select, textarea { width: 100%; box-sizing: border-box; }
button { margin-top: 1em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: .4em; text-align: left; }
.flash { padding: .6em; margin-bottom: 1em; background: #e6ffe6; }
.flash.error { background: #ffe6e6; }
</style>
</head>
<body>
<h1>Orbit Inventory Management</h1>
<nav>
<a href="/?tab=transaction" {{if eq .Tab "transaction"}}class="active"{{end}}>Add Transaction</a>
<a href="/?tab=inventory" {{if eq .Tab "inventory"}}class="active"{{end}}>View Inventory</a>
<a href="/?tab=items" {{if eq .Tab "items"}}class="active"{{end}}>Add Item</a>
</nav>
{{if .Message}}<div class="flash">{{.Message}}</div>{{end}}
{{if .Error}}<div class="flash error">{{.Error}}</div>{{end}}

{{if eq .Tab "transaction"}}
<form method="post" action="/ui/transactions">
<label>Select Item
<select name="item_name">
{{range .Items}}<option value="{{.Name}}">{{.Name}}</option>{{end}}
</select></label>
<label>Transaction Date <input type="date" name="date" value="{{.Today}}"></label>
<label>Quantity <input type="number" name="quantity" min="0" value="0"></label>
<label>Transaction Type
<select name="type">
<option>Received</option>
<option>Sent</option>
</select></label>
<label>Unit <input name="unit"></label>
<label>Manufacturer <input name="manufacturer"></label>
<label>Supplier <input name="supplier"></label>
<label>Supplier Contact <input name="supplier_contact"></label>
<label>Invoice No. <input name="invoice_no"></label>
<label>Invoice Date <input type="date" name="invoice_date" value="{{.Today}}"></label>
<label>Price <input type="number" name="price" min="0" step="0.01" value="0"></label>
<label>Remarks <textarea name="remarks"></textarea></label>
<button type="submit">Submit</button>
</form>
{{end}}

{{if eq .Tab "inventory"}}
<h2>Current Inventory</h2>
{{if .Inventory}}
<table>
<tr><th>Item ID</th><th>Item Name</th><th>Quantity</th></tr>
{{range .Inventory}}<tr><td>{{.ItemID}}</td><td>{{.Name}}</td><td>{{.Quantity}}</td></tr>{{end}}
</table>
<p><a href="/api/v1/inventory/export">Download as Excel</a></p>
{{else}}
<p>No inventory data available.</p>
{{end}}
{{end}}

{{if eq .Tab "items"}}
<form method="post" action="/ui/items">
<label>Enter new item name <input name="name"></label>
<button type="submit">Add Item</button>
</form>
{{end}}
</body>
</html>
`
