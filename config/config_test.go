package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "foldersheets-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	content := `
workdir: "/home/user/.foldersheets"
credentials: "/home/user/.foldersheets/credentials.json"

spreadsheet:
  url: "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"
  worksheet: "Shared Drive"

drive:
  folder: "0AFcbK9RFkRxsUk9PVA"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Workdir != "/home/user/.foldersheets" {
		t.Errorf("expected workdir /home/user/.foldersheets, got %s", cfg.Workdir)
	}
	if cfg.Spreadsheet.Worksheet != "Shared Drive" {
		t.Errorf("expected worksheet 'Shared Drive', got %s", cfg.Spreadsheet.Worksheet)
	}
	if cfg.Drive.Folder != "0AFcbK9RFkRxsUk9PVA" {
		t.Errorf("expected folder 0AFcbK9RFkRxsUk9PVA, got %s", cfg.Drive.Folder)
	}
}

func TestLoadMissingFileAppliesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Spreadsheet.Worksheet != "Folders" {
		t.Errorf("expected default worksheet 'Folders', got %s", cfg.Spreadsheet.Worksheet)
	}
}

func TestLoadRejectsBogusSpreadsheetURL(t *testing.T) {
	tmpfile := filepath.Join(t.TempDir(), "config.yaml")

	content := `
spreadsheet:
  url: "https://example.com/not-a-sheet"
`

	if err := os.WriteFile(tmpfile, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpfile); err == nil {
		t.Fatalf("Expected error for non-Sheets URL, got %v", err)
	}
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("FOLDERSHEETS_TEST_HOME", "/tmp/home")

	tmpfile := filepath.Join(t.TempDir(), "config.yaml")

	content := `
workdir: "$FOLDERSHEETS_TEST_HOME/.foldersheets"
`

	if err := os.WriteFile(tmpfile, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Workdir != "/tmp/home/.foldersheets" {
		t.Errorf("expected expanded workdir, got %s", cfg.Workdir)
	}
}
