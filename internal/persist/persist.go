package persist

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// SaveAtomic marshals v to JSON and writes it atomically (tmp file + rename).
// This prevents corruption if the process is killed mid-write.
func SaveAtomic(path string, v interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Load reads a JSON file and unmarshals it into v.
// If the file does not exist, v is left unchanged and no error is returned.
func Load(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // Graceful: missing file = empty state
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// LoadWords reads word lists from paths and returns them concatenated, in
// file order. A ".json" file holds an array of strings; any other file holds
// one word per line, with blank lines and "#" comments skipped.
// Unlike Load, a missing file is an error. Every file is tried, and the
// failures come back together.
func LoadWords(paths ...string) ([]string, error) {
	var (
		words []string
		errs  *multierror.Error
	)
	for _, p := range paths {
		w, err := loadWordFile(p)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("load words %s: %w", p, err))
			continue
		}
		words = append(words, w...)
	}
	return words, errs.ErrorOrNil()
}

func loadWordFile(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		var words []string
		if err := Load(path, &words); err != nil {
			return nil, err
		}
		return words, nil
	}

	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, sc.Err()
}
