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

package wiki

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/mapping"
	"github.com/walteh/syncopy/pkg/remote"
)

// ErrPageNotFound is returned when a requested sub-page is not part of the
// source wiki.
var ErrPageNotFound = errors.Base("wiki page not found")

// Options controls a wiki copy.
type Options struct {
	// EntitySubPageID restricts the copy to this page and its descendants
	EntitySubPageID string
	// DestinationSubPageID is an existing destination page overwritten by the copied root
	DestinationSubPageID string
	// UpdateLinks rewrites internal wiki links and bare source references
	UpdateLinks bool
	// UpdateSynIDs rewrites references found in EntityMap
	UpdateSynIDs bool
	EntityMap    *mapping.Mapping
}

// Result describes a finished wiki copy.
type Result struct {
	// NoWiki is set when the source has no wiki; nothing else is filled in
	NoWiki bool
	// Headers is the destination's wiki tree after the copy
	Headers []remote.WikiHeader
	// PageIDs maps source page ids to destination page ids
	PageIDs *mapping.Mapping
}

// 📝 Replicator copies wiki trees between entities
type Replicator struct {
	client remote.Client
}

// NewReplicator creates a Replicator using client
func NewReplicator(client remote.Client) *Replicator {
	return &Replicator{client: client}
}

// Copy replicates the wiki of sourceID onto destinationID. Pages are created
// parents first, rewritten once every page exists, and stored again in one
// final batch.
func (r *Replicator) Copy(ctx context.Context, sourceID, destinationID string, opts Options) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("source", sourceID).Str("destination", destinationID).Logger()

	if _, err := r.client.GetEntity(ctx, sourceID, nil); err != nil {
		return nil, errors.Errorf("getting wiki owner %s: %w", sourceID, err)
	}

	headers, err := r.client.GetWikiHeaders(ctx, sourceID)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			logger.Debug().Msg("no wiki to copy")
			return &Result{NoWiki: true}, nil
		}
		return nil, errors.Errorf("getting wiki headers of %s: %w", sourceID, err)
	}

	if opts.EntitySubPageID != "" {
		headers, err = SubTree(headers, opts.EntitySubPageID)
		if err != nil {
			return nil, errors.Errorf("restricting wiki of %s: %w", sourceID, err)
		}
	}

	headers, err = Order(headers)
	if err != nil {
		return nil, errors.Errorf("ordering wiki of %s: %w", sourceID, err)
	}

	if _, err := r.client.GetEntity(ctx, destinationID, nil); err != nil {
		return nil, errors.Errorf("getting wiki destination %s: %w", destinationID, err)
	}

	scratch, err := os.MkdirTemp("", "syncopy-wiki-")
	if err != nil {
		return nil, errors.Errorf("creating attachment scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	pageIDs := &mapping.Mapping{}
	pages := make([]*remote.WikiPage, 0, len(headers))

	for _, h := range headers {
		page, err := r.copyPage(ctx, sourceID, destinationID, h, pageIDs, scratch, opts)
		if err != nil {
			return nil, errors.Errorf("copying wiki page %s of %s: %w", h.ID, sourceID, err)
		}
		pageIDs.Put(h.ID, page.ID)
		pages = append(pages, page)

		logger.Debug().Str("page", h.ID).Str("new_page", page.ID).Msg("copied wiki page")
	}

	for _, page := range pages {
		if opts.UpdateLinks {
			md, err := RewriteLinks(ctx, page.Markdown, sourceID, destinationID, pageIDs)
			if err != nil {
				return nil, errors.Errorf("rewriting wiki page %s of %s: %w", page.ID, destinationID, err)
			}
			page.Markdown = md
		}
		if opts.UpdateSynIDs && opts.EntityMap != nil {
			md, err := RewriteReferences(ctx, page.Markdown, opts.EntityMap)
			if err != nil {
				return nil, errors.Errorf("rewriting wiki page %s of %s: %w", page.ID, destinationID, err)
			}
			page.Markdown = md
		}
	}

	for _, page := range pages {
		if _, err := r.client.StoreWiki(ctx, page); err != nil {
			return nil, errors.Errorf("storing rewritten wiki page %s of %s: %w", page.ID, destinationID, err)
		}
	}

	newHeaders, err := r.client.GetWikiHeaders(ctx, destinationID)
	if err != nil {
		return nil, errors.Errorf("getting wiki headers of %s: %w", destinationID, err)
	}

	logger.Info().Int("pages", pageIDs.Len()).Msg("copied wiki")

	return &Result{Headers: newHeaders, PageIDs: pageIDs}, nil
}

func (r *Replicator) copyPage(ctx context.Context, sourceID, destinationID string, h remote.WikiHeader, pageIDs *mapping.Mapping, scratch string, opts Options) (*remote.WikiPage, error) {
	src, err := r.client.GetWiki(ctx, sourceID, h.ID)
	if err != nil {
		return nil, errors.Errorf("getting page: %w", err)
	}

	attachments, err := r.copyAttachments(ctx, src, scratch)
	if err != nil {
		return nil, err
	}

	if h.ParentID != "" {
		parent, ok := pageIDs.Get(h.ParentID)
		if !ok {
			return nil, errors.Errorf("parent page %s has not been copied", h.ParentID)
		}
		return r.client.StoreWiki(ctx, &remote.WikiPage{
			OwnerID:                 destinationID,
			ParentID:                parent,
			Title:                   src.Title,
			Markdown:                src.Markdown,
			AttachmentFileHandleIDs: attachments,
		})
	}

	if opts.DestinationSubPageID != "" {
		existing, err := r.client.GetWiki(ctx, destinationID, opts.DestinationSubPageID)
		if err != nil {
			return nil, errors.Errorf("getting destination page %s: %w", opts.DestinationSubPageID, err)
		}
		existing.Markdown = src.Markdown
		existing.AttachmentFileHandleIDs = attachments
		return r.client.StoreWiki(ctx, existing)
	}

	return r.client.StoreWiki(ctx, &remote.WikiPage{
		OwnerID:                 destinationID,
		Title:                   src.Title,
		Markdown:                src.Markdown,
		AttachmentFileHandleIDs: attachments,
	})
}

// copyAttachments downloads every attachment of page into scratch and uploads
// it again, returning the new handle ids in the page's order.
func (r *Replicator) copyAttachments(ctx context.Context, page *remote.WikiPage, scratch string) ([]string, error) {
	if len(page.AttachmentFileHandleIDs) == 0 {
		return []string{}, nil
	}

	handles, err := r.client.ListWikiAttachments(ctx, page.OwnerID, page.ID)
	if err != nil {
		return nil, errors.Errorf("listing attachments: %w", err)
	}
	names := make(map[string]string, len(handles))
	for _, fh := range handles {
		names[fh.ID] = fh.FileName
	}

	dir, err := os.MkdirTemp(scratch, "page-")
	if err != nil {
		return nil, errors.Errorf("creating attachment dir: %w", err)
	}

	out := make([]string, 0, len(page.AttachmentFileHandleIDs))
	for _, id := range page.AttachmentFileHandleIDs {
		name, ok := names[id]
		if !ok {
			return nil, errors.Errorf("attachment handle %s: %w", id, remote.ErrNotFound)
		}
		path, err := r.client.DownloadWikiAttachment(ctx, page.OwnerID, page.ID, name, dir)
		if err != nil {
			return nil, errors.Errorf("downloading attachment %q: %w", name, err)
		}
		fh, err := r.client.UploadFile(ctx, path)
		if err != nil {
			return nil, errors.Errorf("uploading attachment %q: %w", name, err)
		}
		out = append(out, fh.ID)
	}
	return out, nil
}
