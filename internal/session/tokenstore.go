package session

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/catchlog/pkg/constants"
	"github.com/agentstation/catchlog/pkg/errors"
)

// FileStore keeps the token in a small YAML document holding a single
// authToken key. The file is only readable by its owner.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultTokenPath is token.yaml under the user's configuration directory.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.NewConfigError("session", "cannot locate the user config directory", err)
	}
	return filepath.Join(dir, constants.AppDirName, constants.TokenFileName), nil
}

// Path returns the file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load returns the persisted token. A missing file means no token.
func (f *FileStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.WrapIO("read", f.path, err)
	}

	doc := map[string]string{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", errors.WrapParse("yaml", f.path, err)
	}
	return doc[constants.TokenKey], nil
}

// Save writes the token, replacing any previous one.
func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), constants.SecureDirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(f.path), err)
	}

	data, err := yaml.Marshal(map[string]string{constants.TokenKey: token})
	if err != nil {
		return errors.WrapParse("yaml", f.path, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, constants.SecureFilePermissions); err != nil {
		return errors.WrapIO("write", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return errors.WrapIO("write", f.path, err)
	}
	return nil
}

// Clear removes the file. A missing file is not an error.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("delete", f.path, err)
	}
	return nil
}

// MemoryStore keeps the token in memory only.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore returns a MemoryStore seeded with token.
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

// Load implements TokenStore.
func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

// Save implements TokenStore.
func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Clear implements TokenStore.
func (m *MemoryStore) Clear() error {
	return m.Save("")
}
