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

var PushCmd = Push{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		url:         "",
		worksheet:   "",
		folder:      "",
		debug:       false,
	},
}

// Push reconciles the worksheet hierarchy into Google Drive, creating any
// folders present in the worksheet but absent remotely. It never renames,
// moves or deletes.
type Push struct {
	command
}

func (cmd *Push) Name() string {
	return "push"
}

func (cmd *Push) Description() string {
	return "Creates the folders listed in the worksheet that are missing from Google Drive"
}

func (cmd *Push) Usage() string {
	return "--credentials <file> --url <url> --folder <folder>"
}

func (cmd *Push) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] push [options] --url <URL> --folder <folder>\n", APP)
	fmt.Println()
	fmt.Println("  Reads the folder hierarchy from the worksheet and creates any folder that does not already")
	fmt.Println("  exist in Google Drive. Existing folders are matched by name and left untouched - push never")
	fmt.Println("  renames, moves or deletes, so running it twice creates nothing the second time")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    foldersheets --debug push --credentials "credentials.json" \`)
	fmt.Println(`                              --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                              --folder "0AFcbK9RFkRxsUk9PVA"`)
	fmt.Println()
}

func (cmd *Push) FlagSet() *flag.FlagSet {
	return cmd.flagset("push")
}

func (cmd *Push) Execute(options *Options) error {
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

	// ... resolve remote root - aborts before any mutation
	remote, err := drive.NewStore(gdrive).ResolveRoot(ctx, folder)
	if err != nil {
		if errors.Is(err, sync.ErrNotFound) || errors.Is(err, sync.ErrPermissionDenied) {
			notify.Fatal(fmt.Sprintf("Cannot access Drive folder '%s' (%v)", folder, err))
			return ErrFatalReported
		}
		return err
	}

	// ... decode worksheet
	rows, err := worksheet.ReadAllRows(ctx)
	if err != nil {
		return err
	}

	local, gaps := tree.Decode(rows)

	if len(gaps) > 0 {
		warnf("%d row(s) have gaps in the ancestor columns - folders on those rows may attach to the wrong parent", len(gaps))
	}

	// ... create missing folders
	created, err := sync.NewReconciler(logger).Reconcile(ctx, remote, local)
	if err != nil {
		return err
	}

	infof("Push complete - created %d folder(s) under '%s'", created, remote.Name())

	return nil
}
