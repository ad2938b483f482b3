// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and reload listeners,
// plus the typed ring configuration decoded from it.

package control

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ring/api"
)

// Config keys understood by Config.
const (
	KeyCapacity  = "ring.capacity"
	KeyChunkSize = "ring.chunk_size"
	KeyLogLevel  = "log.level"
)

// Config is the typed view of ring settings.
type Config struct {
	// Capacity is the ring size in elements (bytes for streams).
	Capacity int
	// ChunkSize caps a single read or write issued against a block.
	// Zero means the whole block.
	ChunkSize int
	// LogLevel is a zerolog level name.
	LogLevel string
}

// DefaultConfig returns settings suitable for a socket staging ring.
func DefaultConfig() Config {
	return Config{
		Capacity:  64 * 1024,
		ChunkSize: 0,
		LogLevel:  zerolog.InfoLevel.String(),
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "config: capacity must be positive").
			WithContext(KeyCapacity, c.Capacity)
	}
	if c.ChunkSize < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "config: chunk size must not be negative").
			WithContext(KeyChunkSize, c.ChunkSize)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %s: %w", KeyLogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// ToMap flattens the config into store keys.
func (c Config) ToMap() map[string]any {
	return map[string]any{
		KeyCapacity:  c.Capacity,
		KeyChunkSize: c.ChunkSize,
		KeyLogLevel:  c.LogLevel,
	}
}

// FromSnapshot overlays snapshot values onto DefaultConfig.
// Unknown keys are ignored; wrongly typed values are an error.
func FromSnapshot(snap map[string]any) (Config, error) {
	cfg := DefaultConfig()
	for key, dst := range map[string]*int{KeyCapacity: &cfg.Capacity, KeyChunkSize: &cfg.ChunkSize} {
		v, ok := snap[key]
		if !ok {
			continue
		}
		n, ok := asInt(v)
		if !ok {
			return cfg, api.NewError(api.ErrCodeInvalidArgument, "config: expected integer").
				WithContext(key, v)
		}
		*dst = n
	}
	if v, ok := snap[KeyLogLevel]; ok {
		s, ok := v.(string)
		if !ok {
			return cfg, api.NewError(api.ErrCodeInvalidArgument, "config: expected string").
				WithContext(KeyLogLevel, v)
		}
		cfg.LogLevel = s
	}
	return cfg, cfg.Validate()
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
	log       zerolog.Logger
}

// NewConfigStore initializes a store seeded with cfg.
func NewConfigStore(cfg Config, log zerolog.Logger) *ConfigStore {
	return &ConfigStore{
		config:    cfg.ToMap(),
		listeners: make([]func(), 0),
		log:       log,
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	copy := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		copy[k] = v
	}
	return copy
}

// Config decodes the current snapshot.
func (cs *ConfigStore) Config() (Config, error) {
	return FromSnapshot(cs.GetSnapshot())
}

// SetConfig merges new values and dispatches reload listeners. The merge is
// rejected as a whole if the resulting config does not validate.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) error {
	cs.mu.Lock()
	merged := make(map[string]any, len(cs.config)+len(newCfg))
	for k, v := range cs.config {
		merged[k] = v
	}
	for k, v := range newCfg {
		merged[k] = v
	}
	if _, err := FromSnapshot(merged); err != nil {
		cs.mu.Unlock()
		cs.log.Warn().Err(err).Msg("config update rejected")
		return err
	}
	cs.config = merged
	listeners := append([]func(){}, cs.listeners...)
	cs.mu.Unlock()

	cs.log.Debug().Int("keys", len(newCfg)).Msg("config updated")
	for _, fn := range listeners {
		fn()
	}
	return nil
}

// OnReload registers a listener hook called after each accepted update.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
