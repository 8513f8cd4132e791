// Package sheets is the catalog source adapter: it reads the liquidation
// manifest out of a Google Sheet tab as raw cells. Parsing and caching live
// in internal/catalog; this package only fetches.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"binscan/internal/config"
)

// Client reads one spreadsheet tab via the Sheets API.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	tab           string
}

// NewFromConfig builds a client from service-account credentials. Inline
// JSON credentials win over a credentials file path; one of the two is
// required. Requests ride a retrying transport under the OAuth layer, so a
// transient API hiccup does not immediately fail a lookup.
func NewFromConfig(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.Sheet.ID == "" {
		return nil, fmt.Errorf("SHEET_ID is not set")
	}

	data := []byte(cfg.Sheet.CredentialsJSON)
	if len(data) == 0 {
		if cfg.Sheet.CredentialsFile == "" {
			return nil, fmt.Errorf("no Google credentials configured (set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_APPLICATION_CREDENTIALS_JSON)")
		}
		var err error
		data, err = os.ReadFile(cfg.Sheet.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
	}

	creds, err := google.CredentialsFromJSON(ctx, data, gsheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to load Google credentials: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(retryingHTTPClient(creds.TokenSource)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.Sheet.ID,
		tab:           cfg.Sheet.Tab,
	}, nil
}

// retryingHTTPClient layers OAuth on top of a retrying transport. The token
// source attaches the bearer token once; the retryable round tripper below
// it replays transient failures (5xx, connection resets) with backoff.
func retryingHTTPClient(src oauth2.TokenSource) *http.Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.Logger = nil
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: src,
			Base:   retry.StandardClient().Transport,
		},
	}
}

// FetchRows returns every cell of the configured tab as strings, header row
// first. The Sheets API hands cells back as interface{} values; everything
// is stringified here so the parser deals in one type.
func (c *Client) FetchRows(ctx context.Context) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.tab).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s!%s: %w", c.spreadsheetID, c.tab, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, rec := range resp.Values {
		row := make([]string, 0, len(rec))
		for _, v := range rec {
			row = append(row, fmt.Sprint(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
