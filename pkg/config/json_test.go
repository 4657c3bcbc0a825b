// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestJSONParsing tests JSON config parsing
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_minimal_json",
			config: `{
				"client": "memory",
				"source": "syn10",
				"destination": "syn20"
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "memory", cfg.Client)
				assert.Equal(t, "syn10", cfg.Source)
				assert.Equal(t, "syn20", cfg.Destination)
				assert.Equal(t, "traceback", cfg.SetProvenance) // default value
				require.NotNil(t, cfg.UpdateSynIDs)
				assert.True(t, *cfg.UpdateSynIDs) // default value
			},
		},
		{
			name: "valid_full_json",
			config: `{
				"client": "memory",
				"source": "syn10",
				"destination": "syn20",
				"version": 2,
				"update": true,
				"set_provenance": "none",
				"exclude_types": ["file", "table"],
				"exclude_names": ["scratch/**", "*.bak"],
				"copy_wiki": true,
				"update_links": false,
				"update_syn_ids": false,
				"entity_sub_page_id": "7",
				"destination_sub_page_id": "8",
				"table_annotations": true,
				"mapping_file": "seed.json",
				"lock_file": "syncopy.lock"
			}`,
			check: func(t *testing.T, cfg *Config) {
				require.NotNil(t, cfg.Version)
				assert.Equal(t, 2, *cfg.Version)
				assert.True(t, cfg.Update)
				assert.Equal(t, "none", cfg.SetProvenance)
				assert.Equal(t, []string{"file", "table"}, cfg.ExcludeTypes)
				assert.Equal(t, []string{"scratch/**", "*.bak"}, cfg.ExcludeNames)
				assert.True(t, *cfg.CopyWiki)
				assert.False(t, *cfg.UpdateLinks)
				assert.False(t, *cfg.UpdateSynIDs)
				assert.Equal(t, "7", cfg.EntitySubPageID)
				assert.Equal(t, "8", cfg.DestinationSubPageID)
				assert.True(t, cfg.TableAnnotations)
				assert.Equal(t, "seed.json", cfg.MappingFile)
				assert.Equal(t, "syncopy.lock", cfg.LockFile)
			},
		},
		{
			name: "invalid_json_syntax",
			config: `{
				"client": "memory",
				"source": "syn10",
			}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "unknown_field",
			config:      `{"client": "memory", "source": "syn10", "destination": "syn20", "force": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "trailing_object",
			config:      `{"client": "memory", "source": "syn10", "destination": "syn20"} {"client": "memory"}`,
			wantErr:     true,
			errContains: "unexpected data after the job object",
		},
		{
			name:        "empty_json",
			config:      "{}",
			wantErr:     true,
			errContains: "client is required",
		},
	}

	parser := &JSONParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// 🧪 TestJSONParserSelection tests JSON parser file detection
func TestJSONParserSelection(t *testing.T) {
	parser := &JSONParser{}

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{
			name:     "json_extension",
			filename: "config.json",
			want:     true,
		},
		{
			name:     "uppercase_extension",
			filename: "config.JSON",
			want:     true,
		},
		{
			name:     "yaml_extension",
			filename: "config.yaml",
			want:     false,
		},
		{
			name:     "no_extension",
			filename: "config",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.CanParse(tt.filename)
			assert.Equal(t, tt.want, got)
		})
	}
}
