package spreadsheet

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// GoogleDocument is a Document backed by the Google Sheets API. The document
// is addressed by spreadsheet id and authenticated with a service-account
// credentials file.
type GoogleDocument struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewGoogleDocument(ctx context.Context, credentialsFile, spreadsheetID string) (*GoogleDocument, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &GoogleDocument{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (d *GoogleDocument) Table(name string) Table {
	return &googleTable{doc: d, name: name}
}

type googleTable struct {
	doc  *GoogleDocument
	name string
}

// a1 builds an A1-notation range; tab names contain spaces so they are quoted.
func (t *googleTable) a1(ref string) string {
	return "'" + t.name + "'!" + ref
}

func (t *googleTable) Rows(ctx context.Context) ([][]string, error) {
	resp, err := t.doc.svc.Spreadsheets.Values.Get(t.doc.spreadsheetID, t.a1("A2:Z")).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, v := range resp.Values {
		rows = append(rows, toStrings(v))
	}
	return rows, nil
}

func (t *googleTable) AppendRow(ctx context.Context, row []string) error {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	_, err := t.doc.svc.Spreadsheets.Values.
		Append(t.doc.spreadsheetID, t.a1("A1"), &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

func (t *googleTable) FindRow(ctx context.Context, col int, value string) (int, error) {
	letter := columnName(col)
	ref := fmt.Sprintf("%s2:%s", letter, letter)
	resp, err := t.doc.svc.Spreadsheets.Values.Get(t.doc.spreadsheetID, t.a1(ref)).Context(ctx).Do()
	if err != nil {
		return 0, err
	}
	for i, v := range resp.Values {
		if len(v) > 0 && fmt.Sprint(v[0]) == value {
			return i + 2, nil
		}
	}
	return 0, ErrRowNotFound
}

func (t *googleTable) ReadCell(ctx context.Context, row, col int) (string, error) {
	ref := cellRef(row, col)
	resp, err := t.doc.svc.Spreadsheets.Values.Get(t.doc.spreadsheetID, t.a1(ref)).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return fmt.Sprint(resp.Values[0][0]), nil
}

func (t *googleTable) WriteCell(ctx context.Context, row, col int, value string) error {
	_, err := t.doc.svc.Spreadsheets.Values.
		Update(t.doc.spreadsheetID, t.a1(cellRef(row, col)), &sheets.ValueRange{
			Values: [][]interface{}{{value}},
		}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}

func toStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = fmt.Sprint(c)
	}
	return out
}

func cellRef(row, col int) string {
	return columnName(col) + strconv.Itoa(row)
}

// columnName converts a 1-based column index to its A1 letter form.
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}
