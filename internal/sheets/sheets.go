// Package sheets reads rows from Google Sheets ranges.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client reads spreadsheet ranges through the Sheets API.
// A nil *Client is valid and behaves as an unconfigured feed.
type Client struct {
	svc *sheets.Service
}

// NewClient creates a Sheets client from a service account file or an API key.
// Returns nil without error when neither is provided, since running without
// spreadsheet feeds is a supported configuration.
func NewClient(ctx context.Context, credentialsFile, apiKey string) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case credentialsFile != "":
		opts = append(opts,
			option.WithCredentialsFile(credentialsFile),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope),
		)
	case apiKey != "":
		opts = append(opts, option.WithAPIKey(apiKey))
	default:
		return nil, nil
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Configured reports whether the client can reach the Sheets API.
func (c *Client) Configured() bool {
	return c != nil && c.svc != nil
}

// ReadRange returns the cell values of a range as trimmed strings.
// An unconfigured client returns no rows and no error.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	if !c.Configured() || spreadsheetID == "" {
		return nil, nil
	}

	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s range %s: %w", spreadsheetID, readRange, err)
	}

	return ToStrings(resp.Values), nil
}

// ToStrings converts raw API cell values into trimmed strings.
func ToStrings(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, raw := range values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = strings.TrimSpace(fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows
}

// Cell returns the value at index i, or "" when the row is short.
// The Sheets API omits trailing empty cells.
func Cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// IsHeader reports whether a row's first cell equals one of the given column names, ignoring case.
func IsHeader(row []string, names ...string) bool {
	first := Cell(row, 0)
	for _, n := range names {
		if strings.EqualFold(first, n) {
			return true
		}
	}
	return false
}
