package state

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/syncopy/pkg/mapping"
)

// 🔒 Lock records what one copy run created
type Lock struct {
	LastUpdated time.Time `json:"last_updated"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`

	// Entities maps source entity ids to destination entity ids
	Entities *mapping.Mapping `json:"entities"`

	// Wikis maps a source owner id to its source → destination page ids
	Wikis map[string]*mapping.Mapping `json:"wikis,omitempty"`
}

// NewLock creates an empty lock for one source/destination pair
func NewLock(source, destination string) *Lock {
	return &Lock{
		Source:      source,
		Destination: destination,
		Entities:    &mapping.Mapping{},
		Wikis:       map[string]*mapping.Mapping{},
	}
}

// PutWiki records the page mapping of a replicated wiki. Nil mappings are ignored.
func (l *Lock) PutWiki(ownerID string, pages *mapping.Mapping) {
	if pages == nil || pages.Len() == 0 {
		return
	}
	if l.Wikis == nil {
		l.Wikis = map[string]*mapping.Mapping{}
	}
	l.Wikis[ownerID] = pages
}

// 💾 Write stores the lock at path as indented json, stamping LastUpdated
func Write(ctx context.Context, path string, lock *Lock) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Int("entities", lock.Entities.Len()).Msg("writing lock")

	lock.LastUpdated = time.Now().UTC()

	data, err := json.MarshalIndent(lock, "", "\t")
	if err != nil {
		return errors.Errorf("marshalling lock: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Errorf("creating lock directory: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Errorf("writing lock file: %w", err)
	}

	return nil
}

// 📖 Read loads a lock written by Write
func Read(ctx context.Context, path string) (*Lock, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("reading lock")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading lock file: %w", err)
	}

	lock, err := decodeLock(data)
	if err != nil {
		return nil, errors.Errorf("decoding lock file %s: %w", path, err)
	}
	if lock == nil {
		return nil, errors.Errorf("lock file %s has no entities", path)
	}

	return lock, nil
}

// ReadMapping loads a seed mapping from path. The file is either a lock file,
// whose entity mapping is returned, or a plain json or yaml object of
// source id → destination id pairs.
func ReadMapping(ctx context.Context, path string) (*mapping.Mapping, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("reading mapping")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading mapping file: %w", err)
	}

	if lock, err := decodeLock(data); err == nil && lock != nil {
		logger.Debug().Int("entities", lock.Entities.Len()).Msg("mapping loaded from lock")
		return lock.Entities, nil
	}

	m := &mapping.Mapping{}
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(data, m)
	default:
		// yaml is a superset of json, so anything else goes through yaml
		err = yaml.Unmarshal(data, m)
	}
	if err != nil {
		return nil, errors.Errorf("decoding mapping file %s: %w", path, err)
	}

	logger.Debug().Int("entities", m.Len()).Msg("mapping loaded")
	return m, nil
}

// decodeLock returns nil without an error when data is valid json but not a lock
func decodeLock(data []byte) (*Lock, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if _, ok := probe["entities"]; !ok {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	lock := &Lock{}
	if err := dec.Decode(lock); err != nil {
		return nil, err
	}
	if lock.Entities == nil {
		lock.Entities = &mapping.Mapping{}
	}
	return lock, nil
}
