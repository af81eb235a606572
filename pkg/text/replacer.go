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

package text

import (
	"context"
	"fmt"
	"io"
)

// DarkMarker is the variant prefix that marks a class as dark-mode only.
const DarkMarker = "dark:"

// RuleKind distinguishes the two rule shapes.
type RuleKind int

const (
	// KindLiteral swaps one literal token for a literal replacement.
	KindLiteral RuleKind = iota
	// KindStructural matches a prefix pattern with capture groups ending in a color token.
	KindStructural
)

func (k RuleKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindStructural:
		return "structural"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

// 🔄 ReplacementRule defines a single guarded substitution
type ReplacementRule struct {
	// Kind selects how From and Prefix are interpreted
	Kind RuleKind

	// Prefix is the regular expression that must precede Token (structural rules only).
	// Its capture groups are available to ToText as ${1}, ${2}, ...
	Prefix string

	// Token is the literal color class being replaced
	Token string

	// ToText is the replacement. For literal rules it is used verbatim,
	// for structural rules it is a template.
	ToText string

	// ExceptAfter is an optional regular expression; a token preceded by a
	// match of it is left alone (literal rules only).
	ExceptAfter string

	// Label is the human name used in change descriptions. Defaults to Token.
	Label string
}

// 📦 Category is a named, ordered group of rules
type Category struct {
	Name  string
	Rules []ReplacementRule
}

// 📚 RuleSet is the ordered list of categories applied to a document
type RuleSet []Category

// Len returns the total number of rules across all categories.
func (s RuleSet) Len() int {
	n := 0
	for _, c := range s {
		n += len(c.Rules)
	}
	return n
}

// 📝 ChangeRecord describes one rule that matched at least once
type ChangeRecord struct {
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	From        string `json:"from" yaml:"from"`
	To          string `json:"to" yaml:"to"`
	Count       int    `json:"count" yaml:"count"`
}

// String renders the record the way the change log prints it.
func (c ChangeRecord) String() string {
	return fmt.Sprintf("%s (%d occurrences)", c.Description, c.Count)
}

// ReplacementResult contains the results of applying a rule set
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made across all rules
	ReplacementCount int

	// Changes lists every rule that fired, in application order
	Changes []ChangeRecord

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies every rule of the set, in order, to the content
	ReplaceText(ctx context.Context, content io.Reader, rules RuleSet) (*ReplacementResult, error)

	// ValidateRules checks that all rules are well formed and compile
	ValidateRules(rules RuleSet) error
}
