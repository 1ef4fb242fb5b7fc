// Package envfile reads KEY=VALUE environment files.
//
// The format is deliberately minimal: lines starting with '#' are comments,
// lines without '=' are ignored, and everything after the first '=' is the
// value. Quotes and escapes are not interpreted.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/agentpay/setupcheck/internal/core/domain"
)

// ErrNotFound is returned by Load when the file does not exist.
var ErrNotFound = domain.ErrEnvFileNotFound

const (
	commentMarker = "#"
	separator     = "="
)

// Record holds parsed pairs in first-seen key order.
type Record struct {
	keys   []string
	values map[string]string
}

func newRecord() *Record {
	return &Record{values: make(map[string]string)}
}

func (r *Record) set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key and whether it was present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in the order they first appeared.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *Record) Len() int { return len(r.keys) }

// Load opens path and parses it. A missing file yields ErrNotFound.
func Load(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	rec, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return rec, nil
}

// FileLoader satisfies domain.EnvLoader by reading files from disk.
type FileLoader struct{}

func (FileLoader) Load(path string) (domain.EnvRecord, error) {
	rec, err := Load(path)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Parse reads pairs from r. Duplicate keys keep the last value.
// Lines may be of any length.
func Parse(r io.Reader) (*Record, error) {
	rec := newRecord()
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line != "" && !strings.HasPrefix(line, commentMarker) && strings.Contains(line, separator) {
			key, value, _ := strings.Cut(strings.TrimSpace(line), separator)
			rec.set(strings.TrimSpace(key), strings.TrimSpace(value))
		}
		if err == io.EOF {
			return rec, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
