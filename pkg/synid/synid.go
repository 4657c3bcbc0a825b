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

// Package synid recognizes platform entity references of the form syn<digits>.
package synid

import (
	"regexp"
	"strings"
)

// Prefix starts every entity reference.
const Prefix = "syn"

var (
	// Pattern matches an entity reference token.
	Pattern = regexp.MustCompile(`syn[0-9]+`)

	// WikiLinkPattern matches an internal wiki link such as syn12/wiki/345.
	WikiLinkPattern = regexp.MustCompile(`syn[0-9]+/wiki/[0-9]+`)

	exact = regexp.MustCompile(`^syn[0-9]+$`)
	lead  = regexp.MustCompile(`^syn[0-9]+`)
)

// IsID reports whether s is exactly one entity reference.
func IsID(s string) bool {
	return exact.MatchString(s)
}

// Parse returns the entity reference s starts with, if any. Trailing text
// such as ".3" version suffixes is ignored.
func Parse(s string) (string, bool) {
	m := lead.FindString(strings.TrimSpace(s))
	return m, m != ""
}

// WikiLink formats the internal link to a wiki page of owner.
func WikiLink(owner, pageID string) string {
	return owner + "/wiki/" + pageID
}
