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
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL. Environment variables are available
// as env.NAME inside expressions.
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environment(),
		},
	}

	type hclConfig struct {
		Client      string `hcl:"client"`
		Source      string `hcl:"source"`
		Destination string `hcl:"destination"`

		Version       *int     `hcl:"version,optional"`
		Update        bool     `hcl:"update,optional"`
		SetProvenance string   `hcl:"set_provenance,optional"`
		ExcludeTypes  []string `hcl:"exclude_types,optional"`
		ExcludeNames  []string `hcl:"exclude_names,optional"`

		CopyWiki     *bool `hcl:"copy_wiki,optional"`
		UpdateLinks  *bool `hcl:"update_links,optional"`
		UpdateSynIDs *bool `hcl:"update_syn_ids,optional"`

		Wiki *struct {
			EntitySubPageID      string `hcl:"entity_sub_page_id,optional"`
			DestinationSubPageID string `hcl:"destination_sub_page_id,optional"`
		} `hcl:"wiki,block"`

		TableAnnotations bool   `hcl:"table_annotations,optional"`
		MappingFile      string `hcl:"mapping_file,optional"`
		LockFile         string `hcl:"lock_file,optional"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Client:           hclCfg.Client,
		Source:           hclCfg.Source,
		Destination:      hclCfg.Destination,
		Version:          hclCfg.Version,
		Update:           hclCfg.Update,
		SetProvenance:    hclCfg.SetProvenance,
		ExcludeTypes:     hclCfg.ExcludeTypes,
		ExcludeNames:     hclCfg.ExcludeNames,
		CopyWiki:         hclCfg.CopyWiki,
		UpdateLinks:      hclCfg.UpdateLinks,
		UpdateSynIDs:     hclCfg.UpdateSynIDs,
		TableAnnotations: hclCfg.TableAnnotations,
		MappingFile:      hclCfg.MappingFile,
		LockFile:         hclCfg.LockFile,
	}

	if hclCfg.Wiki != nil {
		cfg.EntitySubPageID = hclCfg.Wiki.EntitySubPageID
		cfg.DestinationSubPageID = hclCfg.Wiki.DestinationSubPageID
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func environment() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return cty.ObjectVal(vars)
}
