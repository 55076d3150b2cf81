package update

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// releasePlatforms lists the platforms the release pipeline publishes
// binaries for.
var releasePlatforms = map[string][]string{
	"linux":   {"amd64", "arm64"},
	"darwin":  {"amd64", "arm64"},
	"windows": {"amd64"},
}

// SelfUpdate replaces the running binary with the latest release.
func SelfUpdate(currentVersion string) error {
	latest, err := latestVersion()
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	if !updateAvailable(currentVersion, latest) {
		fmt.Printf("Already up to date (version %s)\n", currentVersion)
		return nil
	}

	name, err := binaryName(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	fmt.Printf("Updating from %s to %s...\n", currentVersion, latest)
	assetURL := fmt.Sprintf("%s/%s/%s", downloadBaseURL, latest, name)

	fmt.Println("Downloading new version...")
	tmpFile, err := download(assetURL)
	if err != nil {
		return fmt.Errorf("failed to download update: %w", err)
	}
	defer os.Remove(tmpFile)

	fmt.Println("Verifying checksum...")
	if err := verifyChecksum(tmpFile, assetURL+".sha256"); err != nil {
		return fmt.Errorf("checksum verification failed: %w", err)
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	fmt.Println("Installing new version...")
	if err := install(tmpFile, execPath); err != nil {
		return fmt.Errorf("failed to install update: %w", err)
	}

	fmt.Printf("\n✓ Successfully updated to version %s!\n", latest)
	return nil
}

// binaryName maps a platform to its release asset name.
func binaryName(goos, goarch string) (string, error) {
	supported := false
	for _, arch := range releasePlatforms[goos] {
		if arch == goarch {
			supported = true
			break
		}
	}
	if !supported {
		return "", fmt.Errorf("no release build for %s/%s", goos, goarch)
	}

	name := fmt.Sprintf("rentwheels-%s-%s", goos, goarch)
	if goos == "windows" {
		name += ".exe"
	}
	return name, nil
}

// download writes the release asset to a temp file. Binary downloads get a
// generous timeout.
func download(url string) (string, error) {
	data, err := fetch(url, 5*time.Minute, "")
	if err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp("", "rentwheels-update-*")
	if err != nil {
		return "", err
	}
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}
	return tmpFile.Name(), nil
}

// verifyChecksum compares the downloaded file against the published SHA256
// (checksum file format: "hash  filename").
func verifyChecksum(filePath, checksumURL string) error {
	data, err := fetch(checksumURL, 30*time.Second, "")
	if err != nil {
		return err
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return fmt.Errorf("invalid checksum format")
	}
	expected := fields[0]

	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}

	if actual := fmt.Sprintf("%x", h.Sum(nil)); actual != expected {
		return fmt.Errorf("checksum mismatch (expected: %s, got: %s)", expected, actual)
	}
	return nil
}

// install swaps the new binary in, keeping a backup until the copy succeeds.
// Windows cannot overwrite a running executable, so there the old binary is
// renamed aside instead.
func install(newPath, execPath string) error {
	if err := os.Chmod(newPath, 0755); err != nil {
		return err
	}

	if runtime.GOOS == "windows" {
		backup := execPath + ".old"
		os.Remove(backup)

		if err := os.Rename(execPath, backup); err != nil {
			return fmt.Errorf("failed to move current binary aside: %w", err)
		}
		if err := os.Rename(newPath, execPath); err != nil {
			os.Rename(backup, execPath)
			return fmt.Errorf("failed to install new binary: %w", err)
		}

		fmt.Println("\nNote: old binary saved as .old - you can delete it manually")
		return nil
	}

	backup := execPath + ".backup"
	if err := copyFile(execPath, backup); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	if err := copyFile(newPath, execPath); err != nil {
		copyFile(backup, execPath)
		return fmt.Errorf("failed to install new binary: %w", err)
	}

	os.Remove(backup)
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, info.Mode())
}
