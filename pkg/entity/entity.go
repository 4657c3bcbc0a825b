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

package entity

import (
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/remote"
)

// ErrUnsupportedType is returned for entities whose concrete type the copier
// has no strategy for.
var ErrUnsupportedType = errors.Base("unsupported entity type")

// Kind names a node variant.
type Kind string

const (
	KindProject Kind = "project"
	KindFolder  Kind = "folder"
	KindFile    Kind = "file"
	KindLink    Kind = "link"
	KindTable   Kind = "table"
)

var kinds = map[string]Kind{
	string(KindProject): KindProject,
	string(KindFolder):  KindFolder,
	string(KindFile):    KindFile,
	string(KindLink):    KindLink,
	string(KindTable):   KindTable,
}

// 🔍 ParseKind parses an exclude-type name such as "file" or "Table"
func ParseKind(s string) (Kind, error) {
	k, ok := kinds[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", errors.Errorf("unknown entity kind %q", s)
	}
	return k, nil
}

// Node is a classified entity. The set of variants is closed.
type Node interface {
	Kind() Kind
	Entity() *remote.Entity
	isNode()
}

type base struct {
	entity *remote.Entity
}

func (b base) Entity() *remote.Entity { return b.entity }
func (base) isNode()                  {}

// Project is a top-level container.
type Project struct{ base }

// Folder is a nested container.
type Folder struct{ base }

// File has a data file handle.
type File struct{ base }

// Link points at another entity.
type Link struct{ base }

// Table has a column schema and rows.
type Table struct{ base }

func (Project) Kind() Kind { return KindProject }
func (Folder) Kind() Kind  { return KindFolder }
func (File) Kind() Kind    { return KindFile }
func (Link) Kind() Kind    { return KindLink }
func (Table) Kind() Kind   { return KindTable }

// 🏷️ Classify decides which variant an entity belongs to
func Classify(e *remote.Entity) (Node, error) {
	if e == nil {
		return nil, errors.Errorf("classifying entity: %w", ErrUnsupportedType)
	}

	b := base{entity: e}
	switch e.ConcreteType {
	case remote.TypeProject:
		return Project{b}, nil
	case remote.TypeFolder:
		return Folder{b}, nil
	case remote.TypeFile:
		return File{b}, nil
	case remote.TypeLink:
		return Link{b}, nil
	case remote.TypeTable:
		return Table{b}, nil
	}

	return nil, errors.Errorf("classifying %s (%s): %w", e.ID, e.ConcreteType, ErrUnsupportedType)
}

// ConcreteType returns the platform type name for a kind.
func (k Kind) ConcreteType() string {
	switch k {
	case KindProject:
		return remote.TypeProject
	case KindFolder:
		return remote.TypeFolder
	case KindFile:
		return remote.TypeFile
	case KindLink:
		return remote.TypeLink
	case KindTable:
		return remote.TypeTable
	}
	return ""
}
