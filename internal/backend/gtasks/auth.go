package gtasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// OAuth callback timeout.
	oauthCallbackTimeout = 5 * time.Minute

	// Token exchange timeout.
	tokenExchangeTimeout = 30 * time.Second

	// Token validation timeout.
	tokenCheckTimeout = 10 * time.Second

	// Starting port for the OAuth callback server.
	oauthStartPort = 8085

	// Max port attempts.
	oauthMaxPortAttempts = 5
)

// ErrNoOAuthClient reports a missing oauth_client.json.
var ErrNoOAuthClient = errors.New("oauth_client.json not found")

// Credentials bundles what the remote store needs to authenticate.
type Credentials struct {
	TokenSource oauth2.TokenSource
}

// Authorize returns credentials for the Tasks API. A saved token that
// still refreshes is reused; otherwise the browser consent flow runs and
// the fresh token is saved next to the client file. Prompts go to w so
// stdout stays reserved for command output.
func Authorize(ctx context.Context, clientPath, tokenPath string, w io.Writer) (*Credentials, error) {
	oauthConfig, err := loadOAuthConfig(clientPath)
	if err != nil {
		return nil, err
	}

	if token, err := loadToken(tokenPath); err == nil && token.RefreshToken != "" {
		checkCtx, cancel := context.WithTimeout(ctx, tokenCheckTimeout)
		ts := oauthConfig.TokenSource(checkCtx, token)
		_, err := ts.Token()
		cancel()
		if err == nil {
			return &Credentials{TokenSource: oauthConfig.TokenSource(ctx, token)}, nil
		}
		fmt.Fprintln(w, "saved token no longer works, starting fresh sign-in")
	}

	token, err := browserLogin(ctx, oauthConfig, w)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(tokenPath), 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}
	if err := saveToken(tokenPath, token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	return &Credentials{TokenSource: oauthConfig.TokenSource(ctx, token)}, nil
}

// SetupInstructions explains how to obtain OAuth credentials. dir is
// where the user should place the downloaded file.
func SetupInstructions(dir string) string {
	return fmt.Sprintf(`To talk to Google Tasks, todosh needs OAuth credentials:

1. Go to https://console.cloud.google.com/apis/credentials
2. Create a project (or select an existing one)
3. Enable the Google Tasks API:
   https://console.cloud.google.com/apis/library/tasks.googleapis.com
4. Create OAuth 2.0 credentials:
   - Click 'Create Credentials' > 'OAuth client ID'
   - Choose 'Desktop app' as application type
   - Download the JSON file
5. Save it as:
   %s/oauth_client.json

Then run todosh again.`, dir)
}

func loadOAuthConfig(clientPath string) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(clientPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w in %s", ErrNoOAuthClient, filepath.Dir(clientPath))
	}
	if err != nil {
		return nil, fmt.Errorf("read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}
	return oauthConfig, nil
}

// browserLogin runs the installed-app consent flow: bind a localhost
// callback port, print the consent URL, wait for the redirect, then
// exchange the code for a token.
func browserLogin(ctx context.Context, oauthConfig *oauth2.Config, w io.Writer) (*oauth2.Token, error) {
	port, listener, err := findAvailablePort()
	if err != nil {
		return nil, errors.New("could not bind to local port for OAuth callback")
	}
	defer listener.Close()

	oauthConfig.RedirectURL = fmt.Sprintf("http://localhost:%d/callback", port)

	verifier := oauth2.GenerateVerifier()
	authURL := oauthConfig.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)

	fmt.Fprintln(w, "Open this URL in your browser:")
	fmt.Fprintln(w, authURL)

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(rw http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(rw, "No code in callback", http.StatusBadRequest)
			errCh <- errors.New("no code in callback")
			return
		}
		rw.Header().Set("Content-Type", "text/html")
		fmt.Fprint(rw, "<html><body><h1>Authentication successful</h1><p>You may close this window.</p></body></html>")
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, err
	case <-time.After(oauthCallbackTimeout):
		return nil, errors.New("oauth callback timed out")
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)

	exchangeCtx, cancelExchange := context.WithTimeout(ctx, tokenExchangeTimeout)
	defer cancelExchange()

	token, err := oauthConfig.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchange code for token: %w", err)
	}
	return token, nil
}

// findAvailablePort tries ports starting from oauthStartPort.
func findAvailablePort() (int, net.Listener, error) {
	for i := 0; i < oauthMaxPortAttempts; i++ {
		port := oauthStartPort + i
		addr := fmt.Sprintf("localhost:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			return port, listener, nil
		}
	}
	return 0, nil, errors.New("no available port found")
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}
	return &token, nil
}

// saveToken writes the token with mode 0600.
func saveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
