package commands

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// spreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
func spreadsheetID(url string) (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

// folderID extracts the folder ID from a Google Drive folder URL, accepting
// a bare file ID as-is.
func folderID(v string) (string, error) {
	v = strings.TrimSpace(v)

	if match := regexp.MustCompile(`^https://drive.google.com/drive/(?:u/[0-9]+/)?folders/([a-zA-Z0-9_-]+)`).FindStringSubmatch(v); len(match) == 2 {
		return match[1], nil
	}

	if regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(v) {
		return v, nil
	}

	return "", fmt.Errorf("invalid folder '%s' - expected a Drive folder ID or a 'https://drive.google.com/drive/folders/...' URL", v)
}

func newSheetsService(ctx context.Context, client *http.Client) (*sheets.Service, error) {
	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return service, nil
}

func newDriveService(ctx context.Context, client *http.Client) (*drive.Service, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	return service, nil
}
