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
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/syncopy/pkg/entity"
	"github.com/walteh/syncopy/pkg/mapping"
	"github.com/walteh/syncopy/pkg/operation"
	"github.com/walteh/syncopy/pkg/state"
	"github.com/walteh/syncopy/pkg/synid"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config describes one copy job
type Config struct {
	// Client names a registered remote client
	Client      string `json:"client" yaml:"client"`
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`

	Version       *int     `json:"version,omitempty" yaml:"version,omitempty"`
	Update        bool     `json:"update,omitempty" yaml:"update,omitempty"`
	SetProvenance string   `json:"set_provenance,omitempty" yaml:"set_provenance,omitempty"`
	ExcludeTypes  []string `json:"exclude_types,omitempty" yaml:"exclude_types,omitempty"`
	ExcludeNames  []string `json:"exclude_names,omitempty" yaml:"exclude_names,omitempty"`

	// unset booleans default to true
	CopyWiki     *bool `json:"copy_wiki,omitempty" yaml:"copy_wiki,omitempty"`
	UpdateLinks  *bool `json:"update_links,omitempty" yaml:"update_links,omitempty"`
	UpdateSynIDs *bool `json:"update_syn_ids,omitempty" yaml:"update_syn_ids,omitempty"`

	EntitySubPageID      string `json:"entity_sub_page_id,omitempty" yaml:"entity_sub_page_id,omitempty"`
	DestinationSubPageID string `json:"destination_sub_page_id,omitempty" yaml:"destination_sub_page_id,omitempty"`
	TableAnnotations     bool   `json:"table_annotations,omitempty" yaml:"table_annotations,omitempty"`

	// MappingFile seeds the id mapping from a lock file or a plain object
	MappingFile string `json:"mapping_file,omitempty" yaml:"mapping_file,omitempty"`
	// LockFile receives the mapping after the run
	LockFile string `json:"lock_file,omitempty" yaml:"lock_file,omitempty"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	cfg.Client = strings.TrimSpace(cfg.Client)
	cfg.Source = strings.TrimSpace(cfg.Source)
	cfg.Destination = strings.TrimSpace(cfg.Destination)

	if cfg.Client == "" {
		return errors.Errorf("client is required")
	}
	if cfg.Source == "" {
		return errors.Errorf("source is required")
	}
	if cfg.Destination == "" {
		return errors.Errorf("destination is required")
	}
	if !synid.IsID(cfg.Source) {
		return errors.Errorf("source %q is not an entity id", cfg.Source)
	}
	if !synid.IsID(cfg.Destination) {
		return errors.Errorf("destination %q is not an entity id", cfg.Destination)
	}

	if cfg.Version != nil && *cfg.Version < 1 {
		return errors.Errorf("version must be positive, got %d", *cfg.Version)
	}

	p, err := operation.ParseProvenance(cfg.SetProvenance)
	if err != nil {
		return err
	}
	cfg.SetProvenance = string(p)

	for _, t := range cfg.ExcludeTypes {
		if _, err := entity.ParseKind(t); err != nil {
			return errors.Errorf("exclude_types: %w", err)
		}
	}

	cfg.CopyWiki = orTrue(cfg.CopyWiki)
	cfg.UpdateLinks = orTrue(cfg.UpdateLinks)
	cfg.UpdateSynIDs = orTrue(cfg.UpdateSynIDs)

	return nil
}

func orTrue(b *bool) *bool {
	if b != nil {
		return b
	}
	t := true
	return &t
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	src := cfg.Source
	if cfg.Version != nil {
		src = fmt.Sprintf("%s.%d", src, *cfg.Version)
	}
	return fmt.Sprintf("%s: %s -> %s", cfg.Client, src, cfg.Destination)
}

// 🔧 Options converts the job into copy options, loading the seed mapping
// when MappingFile is set
func (cfg *Config) Options(ctx context.Context) (operation.Options, error) {
	if err := cfg.Validate(); err != nil {
		return operation.Options{}, errors.Errorf("validating config: %w", err)
	}

	opts := operation.DefaultOptions()
	opts.Version = cfg.Version
	opts.Update = cfg.Update
	opts.SetProvenance = operation.Provenance(cfg.SetProvenance)
	opts.ExcludeNames = cfg.ExcludeNames
	opts.CopyWiki = *cfg.CopyWiki
	opts.UpdateLinks = *cfg.UpdateLinks
	opts.UpdateSynIDs = *cfg.UpdateSynIDs
	opts.EntitySubPageID = cfg.EntitySubPageID
	opts.DestinationSubPageID = cfg.DestinationSubPageID
	opts.TableAnnotations = cfg.TableAnnotations

	for _, t := range cfg.ExcludeTypes {
		k, err := entity.ParseKind(t)
		if err != nil {
			return operation.Options{}, errors.Errorf("exclude_types: %w", err)
		}
		opts.ExcludeTypes = append(opts.ExcludeTypes, k)
	}

	opts.Mapping = &mapping.Mapping{}
	if cfg.MappingFile != "" {
		m, err := state.ReadMapping(ctx, cfg.MappingFile)
		if err != nil {
			return operation.Options{}, errors.Errorf("loading mapping: %w", err)
		}
		opts.Mapping = m
	}

	return opts, nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
