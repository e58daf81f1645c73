// Package session persists the authenticated session (the bearer token and
// username) across runs, and clears it on logout or on any 401.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrMiss is returned when a key has no stored value.
var ErrMiss = errors.New("session: key not set")

// KV is the minimal string key-value surface the session needs.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Del(key string) error
}

// FileKV stores keys in a single JSON file, rewritten atomically on every
// mutation. It is the client-side analog of browser local storage.
type FileKV struct {
	path string
}

// NewFileKV creates a file-backed store at path. The parent directory is
// created on first write.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	m := map[string]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &m); err != nil {
			// A corrupt session file is treated as absent; the user just
			// logs in again.
			return map[string]string{}, nil
		}
	}
	return m, nil
}

func (f *FileKV) store(m map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileKV) Get(key string) (string, error) {
	m, err := f.load()
	if err != nil {
		return "", err
	}
	v, ok := m[key]
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

func (f *FileKV) Set(key, value string) error {
	m, err := f.load()
	if err != nil {
		return err
	}
	m[key] = value
	return f.store(m)
}

func (f *FileKV) Del(key string) error {
	m, err := f.load()
	if err != nil {
		return err
	}
	delete(m, key)
	return f.store(m)
}
