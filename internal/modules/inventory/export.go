package inventory

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
)

// exportInventory streams the current stock levels as an .xlsx attachment.
func (h *Handler) exportInventory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListInventory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	f := excelize.NewFile()
	sheetName := "Sheet1"

	f.SetCellValue(sheetName, "A1", "Item ID")
	f.SetCellValue(sheetName, "B1", "Item Name")
	f.SetCellValue(sheetName, "C1", "Quantity")

	for i, e := range entries {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), e.ItemID)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), e.Name)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), e.Quantity)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=inventory.xlsx")
	if err := f.Write(w); err != nil {
		h.log.WithError(err).Error("failed to write inventory export")
	}
}
