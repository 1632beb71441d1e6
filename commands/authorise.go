package commands

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const listenAddr = "localhost:8912"

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		debug:       false,
	},
}

// Authorise runs the interactive OAuth2 consent flow and caches the token
// for the import and push commands.
type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises foldersheets to access Google Sheets and Google Drive"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Opens the Google consent page in a browser and caches the granted token in the workdir")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    foldersheets authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (cached tokens, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")

	return flagset
}

func (cmd *Authorise) Execute(options *Options) error {
	cmd.debug = options.Debug

	if err := cmd.applyConfig(options.Config); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if err := authenticate(cmd.credentials, cmd.workdir); err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	return nil
}

func authenticate(credentials, workdir string) error {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return err
	}

	config, err := google.ConfigFromJSON(b, SHEETS, DRIVE)
	if err != nil {
		return err
	}

	config.RedirectURL = fmt.Sprintf("http://%s/callback", listenAddr)

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	authorised := make(chan string)

	// ... start callback server on localhost
	r := mux.NewRouter()

	r.HandleFunc("/callback", func(w http.ResponseWriter, rq *http.Request) {
		state := rq.FormValue("state")
		code := rq.FormValue("code")

		if state != "state-token" || code == "" {
			http.Error(w, "Invalid authorisation response", http.StatusBadRequest)
			return
		}

		fmt.Fprintln(w, "Authorised - you can close this window and return to the terminal")
		authorised <- code
	})

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			warnf("callback server error (%v)", err)
		}
	}()

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	// ... open consent page in browser
	if err := exec.Command(browse, authURL).Start(); err != nil {
		fmt.Printf("Could not open a browser - please open the following URL manually:\n\n  %s\n\n", authURL)
	}

	// ... wait for consent
	select {
	case <-interrupt:
		fmt.Printf("\n.. cancelled\n\n")

	case code := <-authorised:
		token, err := config.Exchange(context.TODO(), code)
		if err != nil {
			return fmt.Errorf("unable to retrieve token from web (%w)", err)
		}

		tokens := tokenPath(credentials, workdir)
		if err := saveToken(tokens, token); err != nil {
			return err
		}

		infof("Saved token to %s", tokens)
	}

	return srv.Shutdown(context.Background())
}
