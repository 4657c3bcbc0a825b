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

// Concrete entity types as reported by the platform.
const (
	TypeProject = "org.sagebionetworks.repo.model.Project"
	TypeFolder  = "org.sagebionetworks.repo.model.Folder"
	TypeFile    = "org.sagebionetworks.repo.model.FileEntity"
	TypeLink    = "org.sagebionetworks.repo.model.Link"
	TypeTable   = "org.sagebionetworks.repo.model.table.TableEntity"
)

// 📦 Entity is a snapshot of a remote entity's metadata
type Entity struct {
	ID            string              `json:"id,omitempty"`
	Name          string              `json:"name"`
	ParentID      string              `json:"parentId,omitempty"`
	ConcreteType  string              `json:"concreteType"`
	VersionNumber int                 `json:"versionNumber,omitempty"`
	Etag          string              `json:"etag,omitempty"`
	Annotations   map[string][]string `json:"annotations,omitempty"`

	// file
	DataFileHandleID string `json:"dataFileHandleId,omitempty"`
	ExternalURL      string `json:"externalURL,omitempty"`

	// link
	LinksTo *Reference `json:"linksTo,omitempty"`

	// table
	ColumnIDs []string `json:"columnIds,omitempty"`
}

// CloneAnnotations returns a copy of the entity's annotations safe to attach
// to another entity.
func (e *Entity) CloneAnnotations() map[string][]string {
	if e.Annotations == nil {
		return nil
	}
	out := make(map[string][]string, len(e.Annotations))
	for k, v := range e.Annotations {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// 🔗 Reference points at an entity, optionally at a specific version
type Reference struct {
	TargetID      string `json:"targetId"`
	TargetVersion *int   `json:"targetVersionNumber,omitempty"`
}

// EntityHeader is one row of a child listing.
type EntityHeader struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// 📄 FileHandle references stored bytes independently of any entity
type FileHandle struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	CreatedBy   string `json:"createdBy"`
	ContentType string `json:"contentType,omitempty"`
	ExternalURL string `json:"externalURL,omitempty"`
}

// 🧾 Activity is a provenance record
type Activity struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Used        []Used `json:"used,omitempty"`
}

// Used is one resource consumed by an activity.
type Used struct {
	Reference   Reference `json:"reference"`
	WasExecuted bool      `json:"wasExecuted"`
}

// UserProfile identifies the acting user.
type UserProfile struct {
	OwnerID  string `json:"ownerId"`
	UserName string `json:"userName"`
}

// 📊 TableData holds a full table query result
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Len returns the number of rows, tolerating a nil receiver.
func (t *TableData) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// WikiHeader is one node of a flattened wiki tree. An empty ParentID marks a root.
type WikiHeader struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ParentID string `json:"parentId,omitempty"`
}

// 📝 WikiPage is a full wiki document
type WikiPage struct {
	ID                      string   `json:"id,omitempty"`
	OwnerID                 string   `json:"ownerId"`
	ParentID                string   `json:"parentWikiId,omitempty"`
	Title                   string   `json:"title"`
	Markdown                string   `json:"markdown"`
	AttachmentFileHandleIDs []string `json:"attachmentFileHandleIds"`
	Etag                    string   `json:"etag,omitempty"`
}
