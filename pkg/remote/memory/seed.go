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

package memory

import (
	"context"
	"sort"

	"github.com/walteh/syncopy/pkg/remote"
)

// The Add helpers seed a platform directly, bypassing the client surface.
// They panic on invalid input.

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func (p *Platform) add(e *remote.Entity) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return must(p.store(e)).ID
}

// AddProject creates a project.
func (p *Platform) AddProject(name string, annotations map[string][]string) string {
	return p.add(&remote.Entity{Name: name, ConcreteType: remote.TypeProject, Annotations: annotations})
}

// AddFolder creates a folder under parentID.
func (p *Platform) AddFolder(parentID, name string, annotations map[string][]string) string {
	return p.add(&remote.Entity{Name: name, ParentID: parentID, ConcreteType: remote.TypeFolder, Annotations: annotations})
}

// AddFile creates a platform-hosted file owned by the acting user.
func (p *Platform) AddFile(parentID, name string, data []byte, annotations map[string][]string) string {
	p.mu.Lock()
	owner := p.user.OwnerID
	p.mu.Unlock()
	return p.AddFileOwnedBy(parentID, name, owner, data, annotations)
}

// AddFileOwnedBy creates a platform-hosted file whose handle was created by owner.
func (p *Platform) AddFileOwnedBy(parentID, name, owner string, data []byte, annotations map[string][]string) string {
	p.mu.Lock()
	h := p.newHandle(name, owner, "")
	p.content[h.ID] = append([]byte(nil), data...)
	p.mu.Unlock()

	return p.add(&remote.Entity{
		Name:             name,
		ParentID:         parentID,
		ConcreteType:     remote.TypeFile,
		DataFileHandleID: h.ID,
		Annotations:      annotations,
	})
}

// AddExternalFile creates a file that only references url.
func (p *Platform) AddExternalFile(parentID, name, owner, url string) string {
	p.mu.Lock()
	h := p.newHandle(name, owner, url)
	p.mu.Unlock()

	return p.add(&remote.Entity{
		Name:             name,
		ParentID:         parentID,
		ConcreteType:     remote.TypeFile,
		DataFileHandleID: h.ID,
		ExternalURL:      url,
	})
}

// AddFileVersion stores new content for an existing file and returns the new version number.
func (p *Platform) AddFileVersion(id string, data []byte) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, ok := p.latest(id)
	if !ok {
		panic("unknown file " + id)
	}
	h := p.newHandle(p.handles[prev.DataFileHandleID].FileName, p.user.OwnerID, "")
	p.content[h.ID] = append([]byte(nil), data...)

	next := cloneEntity(prev)
	next.DataFileHandleID = h.ID
	return must(p.store(next)).VersionNumber
}

// AddLink creates a link to targetID, optionally pinned to version.
func (p *Platform) AddLink(parentID, name, targetID string, version *int) string {
	return p.add(&remote.Entity{
		Name:         name,
		ParentID:     parentID,
		ConcreteType: remote.TypeLink,
		LinksTo:      &remote.Reference{TargetID: targetID, TargetVersion: version},
	})
}

// AddTable creates a table with the given column ids and rows.
func (p *Platform) AddTable(parentID, name string, columnIDs []string, rows [][]string, annotations map[string][]string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	e := must(p.store(&remote.Entity{
		Name:         name,
		ParentID:     parentID,
		ConcreteType: remote.TypeTable,
		ColumnIDs:    columnIDs,
		Annotations:  annotations,
	}))
	p.tables[e.ID] = cloneTable(&remote.TableData{Headers: columnIDs, Rows: rows})
	return e.ID
}

// AddEntity stores e as given, for concrete types the helpers above do not cover.
func (p *Platform) AddEntity(e *remote.Entity) string {
	return p.add(e)
}

// SetProvenance records activity for version of id.
func (p *Platform) SetProvenance(id string, version int, activity remote.Activity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a := activity
	p.provenance[provenanceKey(id, version)] = &a
}

// AddWiki creates a wiki page and returns its id. An empty parentWikiID creates the root.
func (p *Platform) AddWiki(ownerID, parentWikiID, title, markdown string, attachments map[string][]byte) string {
	p.mu.Lock()
	names := make([]string, 0, len(attachments))
	for name := range attachments {
		names = append(names, name)
	}
	sort.Strings(names)
	ids := make([]string, 0, len(names))
	for _, name := range names {
		h := p.newHandle(name, p.user.OwnerID, "")
		p.content[h.ID] = append([]byte(nil), attachments[name]...)
		ids = append(ids, h.ID)
	}
	p.mu.Unlock()

	return must(p.StoreWiki(context.Background(), &remote.WikiPage{
		OwnerID:                 ownerID,
		ParentID:                parentWikiID,
		Title:                   title,
		Markdown:                markdown,
		AttachmentFileHandleIDs: ids,
	})).ID
}

// Delete removes an entity and everything below it.
func (p *Platform) Delete(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.latest(id)
	if !ok {
		return
	}
	p.deleteTree(id)

	siblings := p.children[e.ParentID]
	for i, sid := range siblings {
		if sid == id {
			p.children[e.ParentID] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
}

func (p *Platform) deleteTree(id string) {
	for _, child := range p.children[id] {
		p.deleteTree(child)
	}
	delete(p.versions, id)
	delete(p.children, id)
}

// Children returns the latest snapshot of every child of parentID in listing order.
func (p *Platform) Children(parentID string) []*remote.Entity {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := []*remote.Entity{}
	for _, id := range p.children[parentID] {
		e, _ := p.latest(id)
		out = append(out, cloneEntity(e))
	}
	return out
}

// FileContent returns the bytes behind the latest version of file id.
func (p *Platform) FileContent(id string) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.latest(id)
	if !ok {
		return nil
	}
	return append([]byte(nil), p.content[e.DataFileHandleID]...)
}

// Handle returns the file handle with the given id.
func (p *Platform) Handle(id string) (remote.FileHandle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.handles[id]
	if !ok {
		return remote.FileHandle{}, false
	}
	return *h, true
}
