// utils/entrypoint.go
package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry file names the front-end bundle may ship, in order of preference.
var entryCandidates = []string{
	"index.html",
	"index.htm",
	"main.html",
	"app.html",
}

// FindEntryPoint returns the path of the front-end entry file directly inside
// the assets directory root.
func FindEntryPoint(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("assets dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("assets dir %s is not a directory", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("read assets dir: %w", err)
	}
	names := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names[strings.ToLower(e.Name())] = e.Name()
	}
	for _, candidate := range entryCandidates {
		if name, ok := names[candidate]; ok {
			return filepath.Join(root, name), nil
		}
	}
	return "", errors.Join(os.ErrNotExist, fmt.Errorf("no entry file in %s", root))
}
