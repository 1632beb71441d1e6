package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/jonaslundjonas/foldersheets/drive"
	"github.com/jonaslundjonas/foldersheets/sheet"
	"github.com/jonaslundjonas/foldersheets/sync"
	"github.com/jonaslundjonas/foldersheets/tree"
)

var ImportCmd = Import{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		url:         "",
		worksheet:   "",
		folder:      "",
		debug:       false,
	},
}

// Import snapshots the remote Drive folder hierarchy into the worksheet,
// replacing its previous contents.
type Import struct {
	command
}

func (cmd *Import) Name() string {
	return "import"
}

func (cmd *Import) Description() string {
	return "Replaces the worksheet with a snapshot of the Google Drive folder hierarchy"
}

func (cmd *Import) Usage() string {
	return "--credentials <file> --url <url> --folder <folder>"
}

func (cmd *Import) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] import [options] --url <URL> --folder <folder>\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the worksheet with a snapshot of the Google Drive folder hierarchy. Folder depth is")
	fmt.Println("  encoded as column offset - a folder at depth N is written to column N, preceded by its")
	fmt.Println("  ancestors, with the 'Drive' marker in the first cell")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    foldersheets --debug import --credentials "credentials.json" \`)
	fmt.Println(`                                --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                --folder "https://drive.google.com/drive/folders/0AFcbK9RFkRxsUk9PVA"`)
	fmt.Println()
}

func (cmd *Import) FlagSet() *flag.FlagSet {
	return cmd.flagset("import")
}

func (cmd *Import) Execute(options *Options) error {
	cmd.debug = options.Debug

	if err := cmd.applyConfig(options.Config); err != nil {
		return err
	}

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(cmd.folder) == "" {
		return fmt.Errorf("--folder is a required option")
	}

	spreadsheet, err := spreadsheetID(cmd.url)
	if err != nil {
		return err
	}

	folder, err := folderID(cmd.folder)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  worksheet:%s  folder:%s", spreadsheet, cmd.worksheet, folder)
	}

	// ... authorise
	client, err := authorize(cmd.credentials, cmd.workdir)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	ctx := context.Background()

	google, err := newSheetsService(ctx, client)
	if err != nil {
		return err
	}

	gdrive, err := newDriveService(ctx, client)
	if err != nil {
		return err
	}

	worksheet, err := sheet.NewWorksheet(google, spreadsheet, cmd.worksheet)
	if err != nil {
		return err
	}

	// ... resolve remote root - aborts before touching the worksheet
	root, err := drive.NewStore(gdrive).ResolveRoot(ctx, folder)
	if err != nil {
		if errors.Is(err, sync.ErrNotFound) || errors.Is(err, sync.ErrPermissionDenied) {
			notify.Fatal(fmt.Sprintf("Cannot access Drive folder '%s' (%v)", folder, err))
			return ErrFatalReported
		}
		return err
	}

	// ... snapshot and rewrite the worksheet
	snapshot, err := sync.Snapshot(ctx, root)
	if err != nil {
		return err
	}

	rows := tree.Encode(snapshot)

	if err := worksheet.Clear(ctx); err != nil {
		return err
	}

	if err := worksheet.WriteBlock(ctx, 0, 0, rows); err != nil {
		return err
	}

	if err := worksheet.Format(ctx); err != nil {
		return err
	}

	infof("Imported %d folder(s) from '%s' to worksheet '%s'", snapshot.Count(), root.Name(), cmd.worksheet)

	return nil
}
