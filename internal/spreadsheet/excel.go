package spreadsheet

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// ExcelDocument is a Document backed by a local .xlsx workbook. Missing
// workbooks are created with the three inventory tabs and their header rows.
// Every mutation saves the file, so the workbook on disk is always current.
type ExcelDocument struct {
	mu sync.Mutex
	f  *excelize.File
}

func OpenExcelDocument(path string) (*ExcelDocument, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		f, err := newWorkbook(path)
		if err != nil {
			return nil, err
		}
		return &ExcelDocument{f: f}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &ExcelDocument{f: f}, nil
}

func newWorkbook(path string) (*excelize.File, error) {
	f := excelize.NewFile()
	for _, tab := range TabOrder {
		if _, err := f.NewSheet(tab); err != nil {
			return nil, err
		}
		for i, h := range Headers[tab] {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(tab, cell, h); err != nil {
				return nil, err
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	if err := f.SaveAs(path); err != nil {
		return nil, err
	}
	return f, nil
}

func (d *ExcelDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.f.Close()
}

func (d *ExcelDocument) Table(name string) Table {
	return &excelTable{doc: d, name: name}
}

type excelTable struct {
	doc  *ExcelDocument
	name string
}

func (t *excelTable) Rows(_ context.Context) ([][]string, error) {
	t.doc.mu.Lock()
	defer t.doc.mu.Unlock()

	rows, err := t.doc.f.GetRows(t.name)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func (t *excelTable) AppendRow(_ context.Context, row []string) error {
	t.doc.mu.Lock()
	defer t.doc.mu.Unlock()

	rows, err := t.doc.f.GetRows(t.name)
	if err != nil {
		return err
	}
	next := len(rows) + 1
	for i, v := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, next)
		if err != nil {
			return err
		}
		if err := t.doc.f.SetCellValue(t.name, cell, v); err != nil {
			return err
		}
	}
	return t.doc.f.Save()
}

func (t *excelTable) FindRow(_ context.Context, col int, value string) (int, error) {
	t.doc.mu.Lock()
	defer t.doc.mu.Unlock()

	rows, err := t.doc.f.GetRows(t.name)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if col <= len(row) && row[col-1] == value {
			return i + 1, nil
		}
	}
	return 0, ErrRowNotFound
}

func (t *excelTable) ReadCell(_ context.Context, row, col int) (string, error) {
	t.doc.mu.Lock()
	defer t.doc.mu.Unlock()

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return t.doc.f.GetCellValue(t.name, cell)
}

func (t *excelTable) WriteCell(_ context.Context, row, col int, value string) error {
	t.doc.mu.Lock()
	defer t.doc.mu.Unlock()

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := t.doc.f.SetCellValue(t.name, cell, value); err != nil {
		return err
	}
	return t.doc.f.Save()
}
