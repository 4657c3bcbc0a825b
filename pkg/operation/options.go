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

package operation

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/entity"
	"github.com/walteh/syncopy/pkg/mapping"
	"github.com/walteh/syncopy/pkg/synid"
)

// Provenance selects the activity recorded on copied files.
type Provenance string

const (
	// ProvenanceTraceback records the source file as used by a new activity
	ProvenanceTraceback Provenance = "traceback"
	// ProvenanceExisting copies the source's own activity, if it has one
	ProvenanceExisting Provenance = "existing"
	// ProvenanceNone records nothing
	ProvenanceNone Provenance = "none"
)

// ParseProvenance parses a provenance policy name. An empty name selects traceback.
func ParseProvenance(s string) (Provenance, error) {
	switch p := Provenance(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ProvenanceTraceback, nil
	case ProvenanceTraceback, ProvenanceExisting, ProvenanceNone:
		return p, nil
	}
	return "", errors.Errorf("set provenance %q must be one of traceback, existing or none: %w", s, ErrInvalidArgument)
}

// 🔧 Options controls a copy
type Options struct {
	// Version pins the source file version; only valid when copying a file
	Version *int
	// Update stores files over same-named destination files instead of failing
	Update bool
	// SetProvenance is the provenance policy for copied files
	SetProvenance Provenance
	// ExcludeTypes skips files, links or tables
	ExcludeTypes []entity.Kind
	// ExcludeNames skips entities whose path below the copy root matches a glob
	ExcludeNames []string

	// CopyWiki replicates the wiki of every copied entity after the tree walk
	CopyWiki bool
	// UpdateLinks rewrites internal wiki links in copied pages
	UpdateLinks bool
	// UpdateSynIDs rewrites entity references in copied pages using the copy mapping
	UpdateSynIDs bool
	// EntitySubPageID restricts the root entity's wiki copy to one sub-page
	EntitySubPageID string
	// DestinationSubPageID is the destination page the copied wiki root overwrites
	DestinationSubPageID string

	// TableAnnotations copies table annotations
	TableAnnotations bool

	// Mapping seeds the copy and receives every new entry
	Mapping *mapping.Mapping
}

// DefaultOptions returns the options a plain copy uses.
func DefaultOptions() Options {
	return Options{
		SetProvenance: ProvenanceTraceback,
		CopyWiki:      true,
		UpdateLinks:   true,
		UpdateSynIDs:  true,
	}
}

// validate checks option values and fills in defaults.
func (o *Options) validate() error {
	p, err := ParseProvenance(string(o.SetProvenance))
	if err != nil {
		return err
	}
	o.SetProvenance = p

	if o.Version != nil && *o.Version < 1 {
		return errors.Errorf("version %d must be positive: %w", *o.Version, ErrInvalidArgument)
	}

	for _, k := range o.ExcludeTypes {
		switch k {
		case entity.KindFile, entity.KindLink, entity.KindTable:
		default:
			return errors.Errorf("exclude type %q must be one of file, link or table: %w", k, ErrInvalidArgument)
		}
	}

	for _, pattern := range o.ExcludeNames {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude name pattern %q is not a valid glob: %w", pattern, ErrInvalidArgument)
		}
	}

	var bad string
	o.Mapping.Range(func(old, to string) bool {
		if !synid.IsID(old) || !synid.IsID(to) {
			bad = old
			return false
		}
		return true
	})
	if bad != "" {
		return errors.Errorf("mapping entry %q must map an entity id to an entity id: %w", bad, ErrInvalidArgument)
	}

	return nil
}

func (o *Options) excludesKind(k entity.Kind) bool {
	for _, x := range o.ExcludeTypes {
		if x == k {
			return true
		}
	}
	return false
}

// excludesPath reports the first exclude pattern matching path.
func (o *Options) excludesPath(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	for _, pattern := range o.ExcludeNames {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return pattern, true
		}
	}
	return "", false
}
