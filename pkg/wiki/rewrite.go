package wiki

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/mapping"
	"github.com/walteh/syncopy/pkg/synid"
	"github.com/walteh/syncopy/pkg/text"
)

var (
	linkReplacer text.TextReplacer = text.NewTokenReplacer(synid.WikiLinkPattern)
	idReplacer   text.TextReplacer = text.NewTokenReplacer(synid.Pattern)
)

// RewriteLinks points internal wiki links of sourceID at their copies under
// destinationID, then replaces remaining bare references to sourceID.
func RewriteLinks(ctx context.Context, markdown, sourceID, destinationID string, pageIDs *mapping.Mapping) (string, error) {
	links := make([]text.ReplacementRule, 0, pageIDs.Len())
	pageIDs.Range(func(old, to string) bool {
		links = append(links, text.ReplacementRule{
			FromText: synid.WikiLink(sourceID, old),
			ToText:   synid.WikiLink(destinationID, to),
		})
		return true
	})

	out, linkCount, err := replace(ctx, linkReplacer, markdown, links)
	if err != nil {
		return "", errors.Errorf("rewriting wiki links: %w", err)
	}

	out, idCount, err := replace(ctx, idReplacer, out, []text.ReplacementRule{{FromText: sourceID, ToText: destinationID}})
	if err != nil {
		return "", errors.Errorf("rewriting source references: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Int("links", linkCount).
		Int("source_references", idCount).
		Msg("rewrote wiki links")

	return out, nil
}

// RewriteReferences replaces every entity reference found in entityMap.
func RewriteReferences(ctx context.Context, markdown string, entityMap *mapping.Mapping) (string, error) {
	rules := make([]text.ReplacementRule, 0, entityMap.Len())
	entityMap.Range(func(old, to string) bool {
		rules = append(rules, text.ReplacementRule{FromText: old, ToText: to})
		return true
	})

	out, n, err := replace(ctx, idReplacer, markdown, rules)
	if err != nil {
		return "", errors.Errorf("rewriting entity references: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("references", n).Msg("rewrote entity references")

	return out, nil
}

func replace(ctx context.Context, r text.TextReplacer, markdown string, rules []text.ReplacementRule) (string, int, error) {
	if len(rules) == 0 {
		return markdown, 0, nil
	}
	if err := r.ValidateRules(rules); err != nil {
		return "", 0, err
	}
	res, err := r.ReplaceText(ctx, strings.NewReader(markdown), rules)
	if err != nil {
		return "", 0, err
	}
	if !res.WasModified {
		return markdown, 0, nil
	}
	return string(res.ModifiedContent), res.ReplacementCount, nil
}
