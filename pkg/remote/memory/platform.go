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

// Package memory implements remote.Client against an in-process platform.
// It backs tests and dry runs; nothing is persisted.
package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/remote"
)

func init() {
	remote.Register("memory", func(ctx context.Context) (remote.Client, error) {
		return New(), nil
	})
}

// DefaultUser is the identity a new Platform acts as.
var DefaultUser = remote.UserProfile{OwnerID: "1000", UserName: "copier"}

type storedPage struct {
	page        remote.WikiPage
	attachments []string
}

// Platform is an in-memory research-data platform.
type Platform struct {
	mu sync.Mutex

	user remote.UserProfile

	nextEntity int
	nextHandle int
	nextWiki   int

	versions   map[string][]*remote.Entity
	children   map[string][]string
	handles    map[string]*remote.FileHandle
	content    map[string][]byte
	provenance map[string]*remote.Activity
	tables     map[string]*remote.TableData
	wikis      map[string][]string
	pages      map[string]*storedPage

	uploads int
}

var _ remote.Client = (*Platform)(nil)

// 🏗️ New creates an empty platform acting as DefaultUser
func New() *Platform {
	return &Platform{
		user:       DefaultUser,
		nextEntity: 100,
		nextHandle: 5000,
		nextWiki:   1,
		versions:   map[string][]*remote.Entity{},
		children:   map[string][]string{},
		handles:    map[string]*remote.FileHandle{},
		content:    map[string][]byte{},
		provenance: map[string]*remote.Activity{},
		tables:     map[string]*remote.TableData{},
		wikis:      map[string][]string{},
		pages:      map[string]*storedPage{},
	}
}

// SetUser changes the acting identity.
func (p *Platform) SetUser(user remote.UserProfile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.user = user
}

// Uploads returns how many files were uploaded through UploadFile.
func (p *Platform) Uploads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.uploads
}

func notFound(format string, args ...any) error {
	return errors.Errorf("%s: %w", fmt.Sprintf(format, args...), remote.ErrNotFound)
}

func provenanceKey(id string, version int) string {
	return id + "." + strconv.Itoa(version)
}

func (p *Platform) latest(id string) (*remote.Entity, bool) {
	h := p.versions[id]
	if len(h) == 0 {
		return nil, false
	}
	return h[len(h)-1], true
}

func (p *Platform) lookup(id string, version *int) (*remote.Entity, error) {
	if version == nil {
		e, ok := p.latest(id)
		if !ok {
			return nil, notFound("entity %s", id)
		}
		return e, nil
	}
	for _, e := range p.versions[id] {
		if e.VersionNumber == *version {
			return e, nil
		}
	}
	return nil, notFound("entity %s version %d", id, *version)
}

func cloneEntity(e *remote.Entity) *remote.Entity {
	out := *e
	out.Annotations = e.CloneAnnotations()
	out.ColumnIDs = append([]string(nil), e.ColumnIDs...)
	if e.LinksTo != nil {
		ref := *e.LinksTo
		if e.LinksTo.TargetVersion != nil {
			v := *e.LinksTo.TargetVersion
			ref.TargetVersion = &v
		}
		out.LinksTo = &ref
	}
	return &out
}

// GetEntity implements remote.Client
func (p *Platform) GetEntity(ctx context.Context, id string, version *int) (*remote.Entity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, err := p.lookup(id, version)
	if err != nil {
		return nil, err
	}
	return cloneEntity(e), nil
}

// ListChildren implements remote.Client
func (p *Platform) ListChildren(ctx context.Context, parentID string) ([]remote.EntityHeader, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.latest(parentID); !ok {
		return nil, notFound("container %s", parentID)
	}

	out := make([]remote.EntityHeader, 0, len(p.children[parentID]))
	for _, id := range p.children[parentID] {
		e, _ := p.latest(id)
		out = append(out, remote.EntityHeader{ID: e.ID, Name: e.Name, Type: e.ConcreteType})
	}
	return out, nil
}

func (p *Platform) childNamed(parentID, name string) (*remote.Entity, bool) {
	for _, id := range p.children[parentID] {
		e, _ := p.latest(id)
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// StoreEntity implements remote.Client. Storing an entity without an ID under
// a parent that already holds a same-named child updates that child, creating
// a new version.
func (p *Platform) StoreEntity(ctx context.Context, entity *remote.Entity, activity *remote.Activity) (*remote.Entity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored, err := p.store(entity)
	if err != nil {
		return nil, err
	}

	if activity != nil {
		a := *activity
		a.ID = uuid.NewString()
		a.Used = append([]remote.Used(nil), activity.Used...)
		p.provenance[provenanceKey(stored.ID, stored.VersionNumber)] = &a
	}

	zerolog.Ctx(ctx).Trace().Str("id", stored.ID).Str("name", stored.Name).Int("version", stored.VersionNumber).Msg("stored entity")

	return cloneEntity(stored), nil
}

func (p *Platform) store(entity *remote.Entity) (*remote.Entity, error) {
	if entity == nil {
		return nil, errors.New("entity is required")
	}

	if entity.ConcreteType != remote.TypeProject {
		if _, ok := p.latest(entity.ParentID); !ok {
			return nil, notFound("parent %s of %q", entity.ParentID, entity.Name)
		}
	}

	switch entity.ConcreteType {
	case remote.TypeFile:
		if entity.DataFileHandleID == "" && entity.ExternalURL != "" {
			entity = cloneEntity(entity)
			entity.DataFileHandleID = p.newHandle(entity.Name, p.user.OwnerID, entity.ExternalURL).ID
		}
		if _, ok := p.handles[entity.DataFileHandleID]; !ok {
			return nil, errors.Errorf("file %q: unknown file handle %q", entity.Name, entity.DataFileHandleID)
		}
	case remote.TypeLink:
		if entity.LinksTo == nil {
			return nil, errors.Errorf("link %q: target is required", entity.Name)
		}
		if _, err := p.lookup(entity.LinksTo.TargetID, entity.LinksTo.TargetVersion); err != nil {
			return nil, errors.Errorf("link %q: %w", entity.Name, err)
		}
	}

	id := entity.ID
	if id == "" {
		if existing, ok := p.childNamed(entity.ParentID, entity.Name); ok {
			if existing.ConcreteType != entity.ConcreteType {
				return nil, errors.Errorf("an entity named %q already exists in %s", entity.Name, entity.ParentID)
			}
			id = existing.ID
		}
	}

	next := cloneEntity(entity)
	next.Etag = uuid.NewString()

	if id == "" {
		next.ID = "syn" + strconv.Itoa(p.nextEntity)
		p.nextEntity++
		next.VersionNumber = 1
		p.versions[next.ID] = []*remote.Entity{next}
		if next.ConcreteType != remote.TypeProject {
			p.children[next.ParentID] = append(p.children[next.ParentID], next.ID)
		}
		return next, nil
	}

	prev, ok := p.latest(id)
	if !ok {
		return nil, notFound("entity %s", id)
	}
	next.ID = id
	next.ParentID = prev.ParentID
	next.VersionNumber = prev.VersionNumber
	if next.ConcreteType == remote.TypeFile && next.DataFileHandleID != prev.DataFileHandleID {
		next.VersionNumber++
		p.versions[id] = append(p.versions[id], next)
		return next, nil
	}
	p.versions[id][len(p.versions[id])-1] = next
	return next, nil
}

// StoreTable implements remote.Client
func (p *Platform) StoreTable(ctx context.Context, schema *remote.Entity, rows *remote.TableData) (*remote.Entity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if schema == nil || schema.ConcreteType != remote.TypeTable {
		return nil, errors.New("table schema is required")
	}
	if rows != nil && len(rows.Headers) != len(schema.ColumnIDs) {
		return nil, errors.Errorf("table %q: %d row headers for %d columns", schema.Name, len(rows.Headers), len(schema.ColumnIDs))
	}

	stored, err := p.store(schema)
	if err != nil {
		return nil, err
	}
	p.tables[stored.ID] = cloneTable(rows)
	return cloneEntity(stored), nil
}

func cloneTable(t *remote.TableData) *remote.TableData {
	if t == nil {
		return &remote.TableData{}
	}
	out := &remote.TableData{Headers: append([]string(nil), t.Headers...)}
	for _, r := range t.Rows {
		out.Rows = append(out.Rows, append([]string(nil), r...))
	}
	return out
}

// QueryTable implements remote.Client
func (p *Platform) QueryTable(ctx context.Context, id string) (*remote.TableData, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.latest(id)
	if !ok || e.ConcreteType != remote.TypeTable {
		return nil, notFound("table %s", id)
	}
	data := cloneTable(p.tables[id])
	if len(data.Headers) == 0 {
		data.Headers = append([]string(nil), e.ColumnIDs...)
	}
	return data, nil
}

// GetProvenance implements remote.Client
func (p *Platform) GetProvenance(ctx context.Context, id string, version *int) (*remote.Activity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, err := p.lookup(id, version)
	if err != nil {
		return nil, err
	}
	a, ok := p.provenance[provenanceKey(id, e.VersionNumber)]
	if !ok {
		return nil, notFound("provenance of %s version %d", id, e.VersionNumber)
	}
	out := *a
	out.Used = append([]remote.Used(nil), a.Used...)
	return &out, nil
}

// GetUserProfile implements remote.Client
func (p *Platform) GetUserProfile(ctx context.Context) (*remote.UserProfile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	u := p.user
	return &u, nil
}

// ListFileHandles implements remote.Client
func (p *Platform) ListFileHandles(ctx context.Context, id string, version int) ([]remote.FileHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, err := p.lookup(id, &version)
	if err != nil {
		return nil, err
	}
	h, ok := p.handles[e.DataFileHandleID]
	if !ok {
		return nil, notFound("file handle of %s", id)
	}
	return []remote.FileHandle{*h}, nil
}

// DownloadFile implements remote.Client
func (p *Platform) DownloadFile(ctx context.Context, id string, version int, dir string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, err := p.lookup(id, &version)
	if err != nil {
		return "", err
	}
	h, ok := p.handles[e.DataFileHandleID]
	if !ok {
		return "", notFound("file handle of %s", id)
	}
	if h.ExternalURL != "" {
		return "", errors.Errorf("file %s is stored externally at %s", id, h.ExternalURL)
	}
	return writeFile(dir, h.FileName, p.content[h.ID])
}

func writeFile(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// UploadFile implements remote.Client
func (p *Platform) UploadFile(ctx context.Context, path string) (*remote.FileHandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	h := p.newHandle(filepath.Base(path), p.user.OwnerID, "")
	p.content[h.ID] = data
	p.uploads++
	return &remote.FileHandle{ID: h.ID, FileName: h.FileName, CreatedBy: h.CreatedBy}, nil
}

func (p *Platform) newHandle(name, createdBy, externalURL string) *remote.FileHandle {
	h := &remote.FileHandle{
		ID:          strconv.Itoa(p.nextHandle),
		FileName:    name,
		CreatedBy:   createdBy,
		ExternalURL: externalURL,
	}
	if externalURL == "" {
		h.ContentType = "application/octet-stream"
	}
	p.nextHandle++
	p.handles[h.ID] = h
	return h
}

// GetWikiHeaders implements remote.Client
func (p *Platform) GetWikiHeaders(ctx context.Context, ownerID string) ([]remote.WikiHeader, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := p.wikis[ownerID]
	if len(ids) == 0 {
		return nil, notFound("wiki of %s", ownerID)
	}
	out := make([]remote.WikiHeader, 0, len(ids))
	for _, id := range ids {
		pg := p.pages[id].page
		out = append(out, remote.WikiHeader{ID: pg.ID, Title: pg.Title, ParentID: pg.ParentID})
	}
	return out, nil
}

func (p *Platform) page(ownerID, wikiID string) (*storedPage, error) {
	sp, ok := p.pages[wikiID]
	if !ok || sp.page.OwnerID != ownerID {
		return nil, notFound("wiki page %s of %s", wikiID, ownerID)
	}
	return sp, nil
}

// GetWiki implements remote.Client
func (p *Platform) GetWiki(ctx context.Context, ownerID, wikiID string) (*remote.WikiPage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, err := p.page(ownerID, wikiID)
	if err != nil {
		return nil, err
	}
	out := sp.page
	out.AttachmentFileHandleIDs = append([]string(nil), sp.attachments...)
	return &out, nil
}

// StoreWiki implements remote.Client
func (p *Platform) StoreWiki(ctx context.Context, page *remote.WikiPage) (*remote.WikiPage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if page == nil {
		return nil, errors.New("wiki page is required")
	}
	if _, ok := p.latest(page.OwnerID); !ok {
		return nil, notFound("wiki owner %s", page.OwnerID)
	}
	for _, hid := range page.AttachmentFileHandleIDs {
		if _, ok := p.handles[hid]; !ok {
			return nil, errors.Errorf("wiki %q: unknown attachment handle %q", page.Title, hid)
		}
	}

	next := *page
	next.AttachmentFileHandleIDs = append([]string(nil), page.AttachmentFileHandleIDs...)
	next.Etag = uuid.NewString()

	if next.ID == "" {
		if next.ParentID == "" {
			for _, id := range p.wikis[next.OwnerID] {
				if p.pages[id].page.ParentID == "" {
					return nil, errors.Errorf("%s already has a root wiki page %s", next.OwnerID, id)
				}
			}
		} else if _, err := p.page(next.OwnerID, next.ParentID); err != nil {
			return nil, errors.Errorf("wiki %q parent: %w", next.Title, err)
		}
		next.ID = strconv.Itoa(p.nextWiki)
		p.nextWiki++
		p.wikis[next.OwnerID] = append(p.wikis[next.OwnerID], next.ID)
	} else {
		prev, err := p.page(next.OwnerID, next.ID)
		if err != nil {
			return nil, err
		}
		next.ParentID = prev.page.ParentID
	}

	p.pages[next.ID] = &storedPage{page: next, attachments: next.AttachmentFileHandleIDs}

	out := next
	out.AttachmentFileHandleIDs = append([]string(nil), next.AttachmentFileHandleIDs...)
	return &out, nil
}

// ListWikiAttachments implements remote.Client
func (p *Platform) ListWikiAttachments(ctx context.Context, ownerID, wikiID string) ([]remote.FileHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, err := p.page(ownerID, wikiID)
	if err != nil {
		return nil, err
	}
	out := make([]remote.FileHandle, 0, len(sp.attachments))
	for _, hid := range sp.attachments {
		out = append(out, *p.handles[hid])
	}
	return out, nil
}

// DownloadWikiAttachment implements remote.Client
func (p *Platform) DownloadWikiAttachment(ctx context.Context, ownerID, wikiID, fileName, dir string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, err := p.page(ownerID, wikiID)
	if err != nil {
		return "", err
	}
	for _, hid := range sp.attachments {
		if h := p.handles[hid]; h.FileName == fileName {
			return writeFile(dir, fileName, p.content[hid])
		}
	}
	return "", notFound("attachment %q of wiki %s", fileName, wikiID)
}
