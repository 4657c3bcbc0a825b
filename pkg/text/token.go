package text

import (
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// TokenReplacer implements TextReplacer by scanning content once for tokens
// matching a pattern and substituting those that have a rule. A match only
// counts as a token when the characters on either side of it are not letters,
// digits or underscores, so "syn1" never matches inside "syn12" or "asyn1".
// Replacement output is never rescanned.
type TokenReplacer struct {
	pattern *regexp.Regexp
}

var _ TextReplacer = (*TokenReplacer)(nil)

// NewTokenReplacer creates a TokenReplacer for pattern
func NewTokenReplacer(pattern *regexp.Regexp) *TokenReplacer {
	return &TokenReplacer{pattern: pattern}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *TokenReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	table := make(map[string]string, len(rules))
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}
		table[rule.FromText] = rule.ToText
	}

	modified, count := r.ReplaceString(string(originalContent), table)

	zerolog.Ctx(ctx).Trace().Int("replacements", count).Msg("replaced tokens")

	return &ReplacementResult{
		WasModified:      count > 0,
		ReplacementCount: count,
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(modified),
	}, nil
}

// ReplaceString rewrites every whole token of s found in table and returns the
// new text with the number of substitutions. When nothing matches, s is
// returned as is.
func (r *TokenReplacer) ReplaceString(s string, table map[string]string) (string, int) {
	if len(table) == 0 || s == "" {
		return s, 0
	}

	matches := r.pattern.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s, 0
	}

	var b strings.Builder
	count := 0
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if !isBoundary(s, start-1) || !isBoundary(s, end) {
			continue
		}
		to, ok := table[s[start:end]]
		if !ok {
			continue
		}
		if count == 0 {
			b.Grow(len(s))
		}
		b.WriteString(s[last:start])
		b.WriteString(to)
		last = end
		count++
	}

	if count == 0 {
		return s, 0
	}

	b.WriteString(s[last:])
	return b.String(), count
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *TokenReplacer) ValidateRules(rules []ReplacementRule) error {
	seen := make(map[string]int, len(rules))
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if loc := r.pattern.FindStringIndex(rule.FromText); loc == nil || loc[0] != 0 || loc[1] != len(rule.FromText) {
			return errors.Errorf("rule %d: %q is not a single %s token", i, rule.FromText, r.pattern.String())
		}
		if j, ok := seen[rule.FromText]; ok {
			return errors.Errorf("rule %d: %q already replaced by rule %d", i, rule.FromText, j)
		}
		seen[rule.FromText] = i
	}
	return nil
}

// isBoundary reports whether position i of s is outside the string or holds a
// byte that cannot continue a token.
func isBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		return false
	}
	return true
}
