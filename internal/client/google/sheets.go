package google

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

type Worksheet struct {
	Spreadsheet string
	Title       string
	Rows        int64
	Columns     int64
}

// QuoteTitle returns the worksheet title in A1 notation, e.g. 'Jan''s log'.
func QuoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func CellRange(title, cell string) string {
	return QuoteTitle(title) + "!" + cell
}

func (c *Client) Spreadsheet(ctx context.Context) (*sheets.Spreadsheet, error) {
	spreadsheet, err := c.Service.Spreadsheets.Get(c.SpreadsheetID).
		Fields("spreadsheetId,properties(title),sheets(properties(title,gridProperties))").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("open spreadsheet "+c.SpreadsheetID, err)
	}
	return spreadsheet, nil
}

// Worksheet resolves a tab by its exact title.
func (c *Client) Worksheet(ctx context.Context, name string) (Worksheet, error) {
	spreadsheet, err := c.Spreadsheet(ctx)
	if err != nil {
		return Worksheet{}, err
	}

	title := ""
	if spreadsheet.Properties != nil {
		title = spreadsheet.Properties.Title
	}

	for _, sheet := range spreadsheet.Sheets {
		p := sheet.Properties
		if p == nil || p.Title != name {
			continue
		}

		ws := Worksheet{
			Spreadsheet: title,
			Title:       p.Title,
		}
		if p.GridProperties != nil {
			ws.Rows = p.GridProperties.RowCount
			ws.Columns = p.GridProperties.ColumnCount
		}
		return ws, nil
	}

	return Worksheet{}, &Error{
		Op:   "resolve worksheet",
		Kind: KindNotFound,
		Err:  fmt.Errorf("worksheet %q not found in spreadsheet %s", name, c.SpreadsheetID),
	}
}

func (c *Client) ReadAll(ctx context.Context, worksheet string) ([][]interface{}, error) {
	resp, err := c.Service.Spreadsheets.Values.Get(c.SpreadsheetID, QuoteTitle(worksheet)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("read worksheet "+worksheet, err)
	}
	return resp.Values, nil
}

func (c *Client) UpdateRange(ctx context.Context, a1Range string, values [][]interface{}) error {
	vr := &sheets.ValueRange{Values: values}
	_, err := c.Service.Spreadsheets.Values.Update(c.SpreadsheetID, a1Range, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return classify("update range "+a1Range, err)
	}
	return nil
}

func (c *Client) AppendRow(ctx context.Context, worksheet string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.Service.Spreadsheets.Values.Append(c.SpreadsheetID, QuoteTitle(worksheet), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return classify("append row to "+worksheet, err)
	}
	return nil
}
