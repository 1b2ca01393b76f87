// Package credentials keeps the account login on disk, readable by the owner only.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"twitterui/internal/domain"
)

const fileMode fs.FileMode = 0o600

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns domain.ErrNoCredentials when the file is absent or holds no login.
func (s *FileStore) Load() (domain.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Credentials{}, domain.ErrNoCredentials
	}
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	var creds domain.Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return domain.Credentials{}, fmt.Errorf("parse credentials: %w", err)
	}
	if creds.Login == "" {
		return creds, domain.ErrNoCredentials
	}

	return creds, nil
}

// Save truncates and rewrites the file. The mode is forced to 0600 even when
// the file already existed with wider permissions.
func (s *FileStore) Save(creds domain.Credentials) error {
	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credentials dir: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("open credentials: %w", err)
	}

	if err := f.Chmod(fileMode); err != nil {
		f.Close()
		return fmt.Errorf("chmod credentials: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close credentials: %w", err)
	}

	return nil
}
