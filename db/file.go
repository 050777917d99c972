// db/file.go
package db

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"go.uber.org/zap"

	logger "github.com/pcbinspect/client/logging"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

const (
	localFileName = "local_storage.json"
	keyFileName   = "secure.key"
)

// LocalFileStore keeps every key in one plaintext JSON object, like browser localStorage.
type LocalFileStore struct {
	mu   sync.Mutex
	path string
}

func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalFileStore{path: filepath.Join(dir, localFileName)}, nil
}

func (l *LocalFileStore) load() (map[string]string, error) {
	data := make(map[string]string)
	raw, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (l *LocalFileStore) save(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(l.path, raw)
}

func (l *LocalFileStore) Get(ctx context.Context, key string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := l.load()
	if err != nil {
		return "", false, storageErr("read", key, err)
	}
	v, ok := data[key]
	return v, ok, nil
}

func (l *LocalFileStore) Set(ctx context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := l.load()
	if err != nil {
		// a corrupt file is replaced rather than blocking every write
		logger.Warn("Resetting unreadable local storage", zap.String("path", l.path), zap.Error(err))
		data = make(map[string]string)
	}
	data[key] = value
	if err := l.save(data); err != nil {
		return storageErr("write", key, err)
	}
	return nil
}

func (l *LocalFileStore) Delete(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := l.load()
	if err != nil {
		return storageErr("delete", key, err)
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	if err := l.save(data); err != nil {
		return storageErr("delete", key, err)
	}
	return nil
}

// SecureFileStore writes one AES-GCM encrypted file per key.
type SecureFileStore struct {
	dir    string
	sealer *sealer
}

// NewSecureFileStore uses encryptionKey when set, otherwise a random key kept in dir/secure.key.
func NewSecureFileStore(dir, encryptionKey string) (*SecureFileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	key := []byte(encryptionKey)
	if encryptionKey == "" {
		var err error
		key, err = loadOrCreateKey(filepath.Join(dir, keyFileName))
		if err != nil {
			return nil, err
		}
	}

	s, err := newSealer(key)
	if err != nil {
		return nil, err
	}
	return &SecureFileStore{dir: dir, sealer: s}, nil
}

func loadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	key = make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	if err := writeFileAtomic(path, key); err != nil {
		return nil, fmt.Errorf("failed to write key file: %w", err)
	}
	logger.Info("Generated storage encryption key", zap.String("path", path))
	return key, nil
}

func (s *SecureFileStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid key name %q", key)
	}
	return filepath.Join(s.dir, key+".enc"), nil
}

func (s *SecureFileStore) Get(ctx context.Context, key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, storageErr("read", key, err)
	}

	raw, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storageErr("read", key, err)
	}

	plain, err := s.sealer.open(string(raw))
	if err != nil {
		return "", false, storageErr("decrypt", key, err)
	}
	return string(plain), true, nil
}

func (s *SecureFileStore) Set(ctx context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return storageErr("write", key, err)
	}

	sealed, err := s.sealer.seal([]byte(value))
	if err != nil {
		return storageErr("encrypt", key, err)
	}
	if err := writeFileAtomic(p, []byte(sealed)); err != nil {
		return storageErr("write", key, err)
	}
	return nil
}

func (s *SecureFileStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return storageErr("delete", key, err)
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return storageErr("delete", key, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
