package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/syncopy/pkg/mapping"
)

func setupTestLogger(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "writing test file")
	return path
}

func TestWriteAndRead(t *testing.T) {
	ctx := setupTestLogger(t)

	t.Run("round_trip_keeps_order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "syncopy.lock")

		lock := NewLock("syn1", "syn2")
		lock.Entities.Put("syn1", "syn2")
		lock.Entities.Put("syn30", "syn40")
		lock.Entities.Put("syn5", "syn6")
		lock.PutWiki("syn1", mapping.New("10", "20", "11", "21"))

		require.NoError(t, Write(ctx, path, lock), "writing lock")
		assert.False(t, lock.LastUpdated.IsZero(), "write stamps the lock")

		got, err := Read(ctx, path)
		require.NoError(t, err, "reading lock")

		assert.Equal(t, "syn1", got.Source)
		assert.Equal(t, "syn2", got.Destination)
		assert.Equal(t, []string{"syn1", "syn30", "syn5"}, got.Entities.Keys())
		require.Contains(t, got.Wikis, "syn1")
		assert.Equal(t, []string{"10", "11"}, got.Wikis["syn1"].Keys())
		assert.True(t, lock.LastUpdated.Equal(got.LastUpdated))
	})

	t.Run("empty_wikis_are_not_recorded", func(t *testing.T) {
		lock := NewLock("syn1", "syn2")
		lock.PutWiki("syn1", nil)
		lock.PutWiki("syn3", &mapping.Mapping{})
		assert.Empty(t, lock.Wikis)
	})

	t.Run("read_missing_file", func(t *testing.T) {
		_, err := Read(ctx, filepath.Join(t.TempDir(), "missing.lock"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("read_rejects_non_lock", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "plain.json", `{"syn1": "syn2"}`)
		_, err := Read(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no entities")
	})

	t.Run("read_rejects_unknown_fields", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "bad.lock", `{"entities": {}, "extra": true}`)
		_, err := Read(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding lock file")
	})
}

func TestReadMapping(t *testing.T) {
	ctx := setupTestLogger(t)

	tests := []struct {
		name     string
		file     string
		content  string
		wantKeys []string
		wantErr  string
	}{
		{
			name:     "plain_json",
			file:     "map.json",
			content:  `{"syn9": "syn1", "syn3": "syn4"}`,
			wantKeys: []string{"syn9", "syn3"},
		},
		{
			name:     "plain_yaml",
			file:     "map.yaml",
			content:  "syn9: syn1\nsyn3: syn4\n",
			wantKeys: []string{"syn9", "syn3"},
		},
		{
			name:     "json_in_yaml_file",
			file:     "map.yml",
			content:  `{"syn7": "syn8"}`,
			wantKeys: []string{"syn7"},
		},
		{
			name:     "lock_file",
			file:     "syncopy.lock",
			content:  `{"source": "syn1", "destination": "syn2", "entities": {"syn1": "syn2", "syn5": "syn6"}}`,
			wantKeys: []string{"syn1", "syn5"},
		},
		{
			name:    "json_array",
			file:    "map.json",
			content: `["syn1"]`,
			wantErr: "decoding mapping file",
		},
		{
			name:    "yaml_list",
			file:    "map.yaml",
			content: "- syn1\n- syn2\n",
			wantErr: "decoding mapping file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			m, err := ReadMapping(ctx, path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, m.Keys())
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := ReadMapping(ctx, filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
