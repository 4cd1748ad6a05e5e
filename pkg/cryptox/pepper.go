package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const pepperBytes = 32

var errNoPepperPath = errors.New("cryptox: pepper path not set")

// The pepper is a server-side secret appended to every password before
// hashing. It lives in a file so restarts keep existing hashes valid.
var pepper struct {
	mu    sync.Mutex
	path  string
	value string
}

// SetPepperPath selects the pepper file and drops any cached value.
func SetPepperPath(file string) {
	pepper.mu.Lock()
	defer pepper.mu.Unlock()
	pepper.path = file
	pepper.value = ""
}

// LoadPepper reads the pepper file, creating it when missing. Calling it at
// startup surfaces file errors before the first password operation.
func LoadPepper() error {
	_, err := currentPepper()
	return err
}

func currentPepper() (string, error) {
	pepper.mu.Lock()
	defer pepper.mu.Unlock()

	if pepper.value != "" {
		return pepper.value, nil
	}
	v, err := readOrCreatePepper(pepper.path)
	if err != nil {
		return "", err
	}
	pepper.value = v
	return v, nil
}

func readOrCreatePepper(path string) (string, error) {
	if path == "" {
		return "", errNoPepperPath
	}
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if v := strings.TrimSpace(string(data)); v != "" {
			return v, nil
		}
		return "", fmt.Errorf("cryptox: pepper file %s is empty", path)
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("cryptox: read pepper: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("cryptox: pepper dir: %w", err)
	}
	raw := make([]byte, pepperBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	v := base64.RawURLEncoding.EncodeToString(raw)

	// O_EXCL so two processes sharing a volume agree on one pepper.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return readOrCreatePepper(path)
	}
	if err != nil {
		return "", fmt.Errorf("cryptox: create pepper: %w", err)
	}
	if _, err := f.WriteString(v); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("cryptox: write pepper: %w", err)
	}
	return v, f.Close()
}
