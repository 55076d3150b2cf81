// Package update keeps the CLI current: it checks GitHub releases for a
// newer build and can swap the running binary in place.
package update

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	releaseAPIURL   = "https://api.github.com/repos/rentwheels-dev/rentwheels/releases/latest"
	downloadBaseURL = "https://github.com/rentwheels-dev/rentwheels/releases/download"
	userAgent       = "rentwheels-cli"
)

// latestVersion fetches the tag of the newest published release.
func latestVersion() (string, error) {
	body, err := fetch(releaseAPIURL, 10*time.Second, "application/vnd.github+json")
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return "", fmt.Errorf("failed to parse release: %w", err)
	}
	return release.TagName, nil
}

// updateAvailable reports whether latest differs from the running version.
// Dev builds always count as outdated.
func updateAvailable(current, latest string) bool {
	current = strings.TrimPrefix(current, "v")
	latest = strings.TrimPrefix(latest, "v")

	if current == "dev" {
		return true
	}
	return current != latest
}

// PrintUpdateNotification tells the user when a newer release exists. The
// check is best effort; failures stay silent.
func PrintUpdateNotification(currentVersion string) {
	latest, err := latestVersion()
	if err != nil {
		return
	}

	if updateAvailable(currentVersion, latest) {
		fmt.Fprintf(os.Stderr, "New version %s -> %s. Run: rentwheels update\n\n", currentVersion, latest)
	}
}

// fetch GETs a URL with the CLI's user agent and returns the response body.
func fetch(url string, timeout time.Duration, accept string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s returned status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
