package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// authorize builds an HTTP client from the cached OAuth2 token. Tokens are
// created by the 'authorise' command; import and push never prompt.
func authorize(credentials, workdir string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, SHEETS, DRIVE)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(tokenPath(credentials, workdir))
	if err != nil {
		return nil, fmt.Errorf("no cached token - run '%s authorise' first (%w)", APP, err)
	}

	return config.Client(context.Background(), token), nil
}

// tokenPath derives the cached token file from the credentials file name so
// that different credentials get different tokens.
func tokenPath(credentials, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(workdir, ".google", fmt.Sprintf("%s.tokens", name))
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)
	return token, err
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%w)", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
