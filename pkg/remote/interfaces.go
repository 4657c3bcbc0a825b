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

package remote

import (
	"context"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrNotFound is wrapped by clients whenever the platform reports that the
// requested object does not exist (no provenance, no wiki, missing link target).
var ErrNotFound = errors.Base("not found")

// 🏭 Factory creates a client
type Factory func(ctx context.Context) (Client, error)

var registry = map[string]Factory{}

// 📝 Register registers a client factory under name
func Register(name string, factory Factory) {
	registry[name] = factory
}

// 🎯 New resolves a registered client by name
func New(ctx context.Context, name string) (Client, error) {
	factory, ok := registry[name]
	if !ok {
		options := []string{}
		for k := range registry {
			options = append(options, k)
		}
		sort.Strings(options)
		return nil, errors.Errorf("client %s not found, options: %s", name, strings.Join(options, ", "))
	}
	return factory(ctx)
}

// Client is the boundary to the remote research-data platform. Every call is
// blocking; implementations own transport, authentication and pagination.
type Client interface {
	// GetEntity fetches entity metadata (never file content), optionally at a version
	GetEntity(ctx context.Context, id string, version *int) (*Entity, error)
	// ListChildren lists the direct children of a container in listing order
	ListChildren(ctx context.Context, parentID string) ([]EntityHeader, error)
	// StoreEntity creates or updates an entity, attaching activity when non-nil.
	// A file with an ExternalURL and no DataFileHandleID gets a new external handle.
	StoreEntity(ctx context.Context, entity *Entity, activity *Activity) (*Entity, error)
	// StoreTable creates a table schema together with its rows in one call
	StoreTable(ctx context.Context, schema *Entity, rows *TableData) (*Entity, error)

	// GetProvenance returns the activity recorded for an entity version
	GetProvenance(ctx context.Context, id string, version *int) (*Activity, error)
	// GetUserProfile returns the acting identity
	GetUserProfile(ctx context.Context) (*UserProfile, error)

	// ListFileHandles lists the file handles of one entity version
	ListFileHandles(ctx context.Context, id string, version int) ([]FileHandle, error)
	// DownloadFile writes the entity's file content into dir and returns its path
	DownloadFile(ctx context.Context, id string, version int, dir string) (string, error)
	// UploadFile uploads a local file and returns the new handle
	UploadFile(ctx context.Context, path string) (*FileHandle, error)

	// QueryTable fetches every row of a table
	QueryTable(ctx context.Context, id string) (*TableData, error)

	// GetWikiHeaders returns the flattened wiki tree of an owner
	GetWikiHeaders(ctx context.Context, ownerID string) ([]WikiHeader, error)
	// GetWiki fetches one wiki page
	GetWiki(ctx context.Context, ownerID, wikiID string) (*WikiPage, error)
	// StoreWiki creates a page when ID is empty, otherwise updates it
	StoreWiki(ctx context.Context, page *WikiPage) (*WikiPage, error)
	// ListWikiAttachments lists the attachment handles of a page
	ListWikiAttachments(ctx context.Context, ownerID, wikiID string) ([]FileHandle, error)
	// DownloadWikiAttachment writes one attachment into dir and returns its path
	DownloadWikiAttachment(ctx context.Context, ownerID, wikiID, fileName, dir string) (string, error)
}
