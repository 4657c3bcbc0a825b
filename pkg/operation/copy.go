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
	"context"
	"path"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/entity"
	"github.com/walteh/syncopy/pkg/mapping"
	"github.com/walteh/syncopy/pkg/remote"
)

// 🌳 walker copies one source tree, depth first, in listing order
type walker struct {
	client   remote.Client
	reporter Reporter
	opts     Options
	mapping  *mapping.Mapping

	// copied lists source ids mapped by this walk, parents first
	copied []string
	user   *remote.UserProfile
}

func classify(e *remote.Entity) (entity.Node, error) {
	node, err := entity.Classify(e)
	if err != nil {
		return nil, errors.Errorf("copying %s (%s): %w", e.ID, e.ConcreteType, ErrUnsupportedEntityType)
	}
	return node, nil
}

func (w *walker) run(ctx context.Context, sourceID, destinationID string) error {
	src, err := w.client.GetEntity(ctx, sourceID, nil)
	if err != nil {
		return errors.Errorf("getting source %s: %w", sourceID, err)
	}

	node, err := classify(src)
	if err != nil {
		return err
	}

	relPath := src.Name
	if node.Kind() == entity.KindProject {
		relPath = ""
	}

	if err := w.preflight(ctx, node, destinationID, relPath); err != nil {
		return errors.Errorf("checking destination %s for %s: %w", destinationID, sourceID, err)
	}

	return w.visit(ctx, node, destinationID, relPath)
}

func (w *walker) copyTree(ctx context.Context, sourceID, destinationID, parentPath string) error {
	src, err := w.client.GetEntity(ctx, sourceID, nil)
	if err != nil {
		return errors.Errorf("getting %s: %w", sourceID, err)
	}

	node, err := classify(src)
	if err != nil {
		return err
	}

	return w.visit(ctx, node, destinationID, path.Join(parentPath, src.Name))
}

func (w *walker) visit(ctx context.Context, node entity.Node, destinationID, relPath string) error {
	src := node.Entity()

	zerolog.Ctx(ctx).Debug().
		Str("id", src.ID).
		Str("kind", string(node.Kind())).
		Str("path", relPath).
		Str("destination", destinationID).
		Msg("visiting entity")

	if pattern, ok := w.opts.excludesPath(relPath); ok {
		w.report(ctx, node, Result{Outcome: OutcomeExcluded, Reason: "name matches " + pattern})
		return nil
	}

	switch n := node.(type) {
	case entity.Project:
		return w.copyProject(ctx, n, destinationID, relPath)
	case entity.Folder:
		return w.copyFolder(ctx, n, destinationID, relPath)
	}

	if w.opts.excludesKind(node.Kind()) {
		w.report(ctx, node, Result{Outcome: OutcomeExcluded, Reason: "type " + string(node.Kind()) + " excluded"})
		return nil
	}

	switch n := node.(type) {
	case entity.File:
		newID, err := w.copyFile(ctx, n, destinationID)
		if err != nil {
			return errors.Errorf("copying file %s: %w", src.ID, err)
		}
		w.record(ctx, node, newID)
	case entity.Link:
		newID, err := w.copyLink(ctx, n, destinationID)
		if errors.Is(err, ErrBrokenLinkTarget) {
			zerolog.Ctx(ctx).Warn().Err(err).Str("id", src.ID).Msg("target of this link no longer exists, skipping")
			w.report(ctx, node, Result{Outcome: OutcomeSkipped, Reason: ErrBrokenLinkTarget.Error()})
			return nil
		}
		if err != nil {
			return errors.Errorf("copying link %s: %w", src.ID, err)
		}
		w.record(ctx, node, newID)
	case entity.Table:
		newID, err := w.copyTable(ctx, n, destinationID)
		if err != nil {
			return errors.Errorf("copying table %s: %w", src.ID, err)
		}
		w.record(ctx, node, newID)
	default:
		return errors.Errorf("copying %s: %w", src.ID, ErrUnsupportedEntityType)
	}

	return nil
}

// 📁 copyProject maps a project onto an existing container and copies its children into it
func (w *walker) copyProject(ctx context.Context, n entity.Project, destinationID, relPath string) error {
	src := n.Entity()

	if w.opts.Version != nil {
		return errors.Errorf("copying project %s: version applies to files only: %w", src.ID, ErrInvalidArgument)
	}

	dst, err := w.client.GetEntity(ctx, destinationID, nil)
	if err != nil {
		return errors.Errorf("copying project %s: getting destination %s: %w", src.ID, destinationID, err)
	}
	if dst.ConcreteType != remote.TypeProject && dst.ConcreteType != remote.TypeFolder {
		return errors.Errorf("copying project %s: destination %s must be an existing project or folder: %w", src.ID, destinationID, ErrInvalidArgument)
	}

	w.record(ctx, n, destinationID)

	return w.copyChildren(ctx, src.ID, destinationID, relPath)
}

// 📂 copyFolder creates a same-named folder and copies the children into it
func (w *walker) copyFolder(ctx context.Context, n entity.Folder, destinationID, relPath string) error {
	src := n.Entity()

	if w.opts.Version != nil {
		return errors.Errorf("copying folder %s: version applies to files only: %w", src.ID, ErrInvalidArgument)
	}

	if err := w.checkName(ctx, destinationID, src.Name, ""); err != nil {
		return errors.Errorf("copying folder %s: %w", src.ID, err)
	}

	stored, err := w.client.StoreEntity(ctx, &remote.Entity{
		Name:         src.Name,
		ParentID:     destinationID,
		ConcreteType: remote.TypeFolder,
		Annotations:  src.CloneAnnotations(),
	}, nil)
	if err != nil {
		return errors.Errorf("copying folder %s: storing: %w", src.ID, err)
	}

	w.record(ctx, n, stored.ID)

	return w.copyChildren(ctx, src.ID, stored.ID, relPath)
}

func (w *walker) copyChildren(ctx context.Context, sourceID, destinationID, relPath string) error {
	children, err := w.client.ListChildren(ctx, sourceID)
	if err != nil {
		return errors.Errorf("listing children of %s: %w", sourceID, err)
	}
	for _, child := range children {
		if err := w.copyTree(ctx, child.ID, destinationID, relPath); err != nil {
			return err
		}
	}
	return nil
}

// checkName fails with ErrDuplicateName when parentID already holds name.
// A non-empty concreteType only counts children of that type.
func (w *walker) checkName(ctx context.Context, parentID, name, concreteType string) error {
	children, err := w.client.ListChildren(ctx, parentID)
	if err != nil {
		return errors.Errorf("listing %s: %w", parentID, err)
	}
	for _, c := range children {
		if c.Name != name {
			continue
		}
		if concreteType != "" && c.Type != concreteType {
			continue
		}
		return errors.Errorf("an item named %q already exists in %s: %w", name, parentID, ErrDuplicateName)
	}
	return nil
}

// preflight checks every name the walk will create directly in the existing
// destination before anything is created.
func (w *walker) preflight(ctx context.Context, root entity.Node, destinationID, relPath string) error {
	type candidate struct {
		id   string
		name string
		kind entity.Kind
		path string
	}

	var candidates []candidate
	if root.Kind() == entity.KindProject {
		children, err := w.client.ListChildren(ctx, root.Entity().ID)
		if err != nil {
			return errors.Errorf("listing children of %s: %w", root.Entity().ID, err)
		}
		for _, c := range children {
			node, err := classify(&remote.Entity{ID: c.ID, Name: c.Name, ConcreteType: c.Type})
			if err != nil {
				return err
			}
			candidates = append(candidates, candidate{c.ID, c.Name, node.Kind(), path.Join(relPath, c.Name)})
		}
	} else {
		src := root.Entity()
		candidates = append(candidates, candidate{src.ID, src.Name, root.Kind(), relPath})
	}

	existing, err := w.client.ListChildren(ctx, destinationID)
	if err != nil {
		return errors.Errorf("listing destination %s: %w", destinationID, err)
	}
	taken := make(map[string]bool, len(existing))
	for _, e := range existing {
		taken[e.Name] = true
	}

	// any same-named entity blocks a candidate, tables included
	for _, c := range candidates {
		if _, ok := w.opts.excludesPath(c.path); ok || w.opts.excludesKind(c.kind) {
			continue
		}
		switch {
		case !taken[c.name]:
			continue
		case c.kind == entity.KindFile && w.opts.Update:
			continue
		}
		return errors.Errorf("copying %s %s: an item named %q already exists in %s: %w", c.kind, c.id, c.name, destinationID, ErrDuplicateName)
	}

	return nil
}

func (w *walker) record(ctx context.Context, node entity.Node, newID string) {
	src := node.Entity()

	if prev, replaced := w.mapping.Put(src.ID, newID); replaced {
		zerolog.Ctx(ctx).Warn().Str("id", src.ID).Str("previous", prev).Str("new", newID).Msg("overwriting existing mapping entry")
	}
	w.copied = append(w.copied, src.ID)

	zerolog.Ctx(ctx).Info().Str("id", src.ID).Str("new_id", newID).Str("kind", string(node.Kind())).Msg("copied entity")

	w.report(ctx, node, Result{Outcome: OutcomeCopied, NewID: newID})
}

func (w *walker) report(ctx context.Context, node entity.Node, r Result) {
	r.SourceID = node.Entity().ID
	r.Kind = node.Kind()
	r.Name = node.Entity().Name
	w.reporter.Report(ctx, r)
}
