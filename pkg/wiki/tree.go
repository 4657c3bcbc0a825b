package wiki

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/remote"
)

// SubTree restricts headers to page id and its descendants. The page becomes
// the root of the result.
func SubTree(headers []remote.WikiHeader, id string) ([]remote.WikiHeader, error) {
	children := map[string][]remote.WikiHeader{}
	var root *remote.WikiHeader
	for i, h := range headers {
		if h.ID == id {
			root = &headers[i]
		}
		children[h.ParentID] = append(children[h.ParentID], h)
	}
	if root == nil {
		return nil, errors.Errorf("sub-page %s: %w", id, ErrPageNotFound)
	}

	out := []remote.WikiHeader{{ID: root.ID, Title: root.Title}}
	seen := map[string]bool{root.ID: true}
	var walk func(parent string)
	walk = func(parent string) {
		for _, c := range children[parent] {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			out = append(out, c)
			walk(c.ID)
		}
	}
	walk(root.ID)
	return out, nil
}

// Order returns headers sorted so that every page follows its parent,
// keeping the listing order among siblings.
func Order(headers []remote.WikiHeader) ([]remote.WikiHeader, error) {
	known := make(map[string]bool, len(headers))
	for _, h := range headers {
		known[h.ID] = true
	}

	children := map[string][]remote.WikiHeader{}
	var roots []remote.WikiHeader
	for _, h := range headers {
		switch {
		case h.ParentID == "":
			roots = append(roots, h)
		case !known[h.ParentID]:
			return nil, errors.Errorf("page %s: parent %s: %w", h.ID, h.ParentID, ErrPageNotFound)
		default:
			children[h.ParentID] = append(children[h.ParentID], h)
		}
	}
	if len(roots) > 1 {
		return nil, errors.Errorf("wiki has %d root pages", len(roots))
	}

	out := make([]remote.WikiHeader, 0, len(headers))
	var walk func(h remote.WikiHeader)
	walk = func(h remote.WikiHeader) {
		out = append(out, h)
		for _, c := range children[h.ID] {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}

	if len(out) != len(headers) {
		return nil, errors.Errorf("wiki pages form a cycle: %d of %d pages reachable from the root", len(out), len(headers))
	}
	return out, nil
}
