// db/store.go
package db

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/config"
	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
)

// Fixed key names of the persisted client state.
const (
	KeyUserSession    = "user_session"
	KeyAutoLogin      = "auto_login"
	KeySessionCookies = "session_cookies"
	KeyAuditLog       = "audit_log"
)

const (
	BackendSecure = "secure"
	BackendLocal  = "local"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Store is a flat string key-value slot. Get reports ok=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// NewStore opens the backend named by storage.backend.
func NewStore(ctx context.Context, cfg *config.Configuration) (Store, error) {
	backend := strings.ToLower(cfg.Storage.Backend)
	logger.Debug("Opening key-value store", zap.String("backend", backend), zap.String("dir", cfg.Storage.Dir))

	switch backend {
	case BackendSecure, "":
		return NewSecureFileStore(cfg.Storage.Dir, cfg.Storage.EncryptionKey)
	case BackendLocal:
		return NewLocalFileStore(cfg.Storage.Dir)
	case BackendRedis:
		return InitRedis(ctx, cfg.Redis, cfg.Storage.EncryptionKey)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func storageErr(op, key string, err error) error {
	return fmt.Errorf("failed to %s %q: %w: %w", op, key, pcb_errors.ErrStorage, err)
}
