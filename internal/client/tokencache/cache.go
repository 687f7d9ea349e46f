// Package tokencache persists the CLI's bearer token between invocations.
//
// The cache is a single JSON file, <dir>/token.json, holding at least the
// key "access_token". It is written on login, removed on logout and only read
// otherwise. Concurrent CLI processes are not coordinated.
package tokencache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "programador/internal/errors"
)

// FileName is the cache file inside the cache directory.
const FileName = "token.json"

const tokenKey = "access_token"

// Cache is the on-disk token cache.
type Cache struct {
	dir string
}

// New prepares dir for use, creating it when absent. A dir path that exists
// but is not a directory is a configuration error.
func New(dir string) (*Cache, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return nil, apperrors.New(apperrors.KindConfiguration, fmt.Sprintf("Diretório %s inválido!", dir))
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, apperrors.Wrap(apperrors.KindConfiguration, fmt.Sprintf("Não foi possível criar %s", dir), err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.KindConfiguration, fmt.Sprintf("Diretório %s inacessível", dir), err)
	}
	return &Cache{dir: dir}, nil
}

// Path is the cache file location.
func (c *Cache) Path() string {
	return filepath.Join(c.dir, FileName)
}

// Save replaces the cached token. The file is written next to its final
// location and renamed into place.
func (c *Cache) Save(token string) error {
	payload, err := json.Marshal(map[string]string{tokenKey: token})
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}

	tmp, err := os.CreateTemp(c.dir, FileName+".*")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write token: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod token: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close token file: %w", err)
	}
	if err := os.Rename(tmpName, c.Path()); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}

// Load returns the cached token. ok is false when nothing is cached.
func (c *Cache) Load() (token string, ok bool, err error) {
	info, err := os.Stat(c.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.Wrap(apperrors.KindCorruptCache, "Arquivo de Token inválido!", err)
	}
	if !info.Mode().IsRegular() {
		return "", false, apperrors.New(apperrors.KindCorruptCache, "Arquivo de Token inválido!")
	}

	data, err := os.ReadFile(c.Path())
	if err != nil {
		return "", false, apperrors.Wrap(apperrors.KindCorruptCache, "Arquivo de Token inválido!", err)
	}

	var content map[string]interface{}
	if err := json.Unmarshal(data, &content); err != nil {
		return "", false, apperrors.Wrap(apperrors.KindCorruptCache, "Arquivo de Token inválido!", err)
	}

	token, _ = content[tokenKey].(string)
	if token == "" {
		return "", false, apperrors.New(apperrors.KindCorruptCache, "Arquivo de token sem chave access_token!")
	}
	return token, true, nil
}

// Clear removes the cached token. Clearing an empty cache is not an error.
func (c *Cache) Clear() error {
	if err := os.Remove(c.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
