package commands

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"
)

// validate checks form structs before anything goes over the wire, the same
// checks the signup/login forms would run in a browser.
var validate = validator.New()

const dateLayout = "2006-01-02"

// promptPassword reads a password from the terminal without echoing. In
// non-interactive mode (piped stdin) the caller must supply it another way.
func promptPassword(label string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("%s is required in non-interactive mode (use the flag or env var)", label)
	}

	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	return string(raw), nil
}

// parseDate parses a YYYY-MM-DD date at midnight local time.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// rentalDays counts calendar days in a rental, inclusive of both pick-up and
// drop-off days: same-day rental is 1 day. Both ends are normalized to UTC
// midnight so a DST change between them cannot shift the count.
func rentalDays(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}

// openBrowser opens the URL in the default browser
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// envOr returns the flag value, or the environment variable when the flag is
// empty. Useful for CI where flags are awkward.
func envOr(flagValue, envKey string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(envKey)
}
