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
	"io"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*GuardedReplacer)(nil)

// GuardedReplacer implements TextReplacer with lookaround-guarded regular expressions
type GuardedReplacer struct {
	matchTimeout time.Duration
}

// Option configures a GuardedReplacer
type Option func(*GuardedReplacer)

// WithMatchTimeout bounds the time a single rule may spend matching.
// Zero leaves matching unbounded.
func WithMatchTimeout(d time.Duration) Option {
	return func(r *GuardedReplacer) {
		r.matchTimeout = d
	}
}

// NewGuardedReplacer creates a new GuardedReplacer
func NewGuardedReplacer(opts ...Option) *GuardedReplacer {
	r := &GuardedReplacer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *GuardedReplacer) ReplaceText(ctx context.Context, content io.Reader, rules RuleSet) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	current := string(originalContent)
	for _, category := range rules {
		for i, rule := range category.Rules {
			re, err := r.compile(rule)
			if err != nil {
				return nil, errors.Errorf("category %q rule %d: %w", category.Name, i, err)
			}

			next, count, err := applyRule(re, rule, current)
			if err != nil {
				return nil, errors.Errorf("applying %s: %w", rule.From(), err)
			}

			logger.Debug().
				Str("category", category.Name).
				Str("rule", rule.From()).
				Int("count", count).
				Msg("applied rule")

			if count == 0 {
				continue
			}
			current = next

			result.WasModified = true
			result.ReplacementCount += count
			result.Changes = append(result.Changes, ChangeRecord{
				Category:    category.Name,
				Description: rule.Description(),
				From:        rule.From(),
				To:          rule.To(),
				Count:       count,
			})
		}
	}

	result.ModifiedContent = []byte(current)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *GuardedReplacer) ValidateRules(rules RuleSet) error {
	for ci, category := range rules {
		if category.Name == "" {
			return errors.Errorf("category %d: name is required", ci)
		}
		for i, rule := range category.Rules {
			if _, err := r.compile(rule); err != nil {
				return errors.Errorf("category %q rule %d: %w", category.Name, i, err)
			}
		}
	}
	return nil
}

func (r *GuardedReplacer) compile(rule ReplacementRule) (*regexp2.Regexp, error) {
	expr, err := rule.Pattern()
	if err != nil {
		return nil, err
	}
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, errors.Errorf("compiling %q: %w", expr, err)
	}
	if r.matchTimeout > 0 {
		re.MatchTimeout = r.matchTimeout
	}
	return re, nil
}

// applyRule replaces every guarded match of rule in s and returns the new
// content with the number of substitutions.
//
// A structural match consumes its size and weight prefix, so a second token
// in the same attribute is only reachable on a later pass. Structural rules
// therefore repeat until nothing matches. Each pass must turn at least one
// bare token into its dark: form, which bounds the passes by the token count.
func applyRule(re *regexp2.Regexp, rule ReplacementRule, s string) (string, int, error) {
	maxPasses := 1
	if rule.Kind == KindStructural {
		maxPasses = strings.Count(s, rule.Token) + 1
	}

	total := 0
	for pass := 0; pass < maxPasses; pass++ {
		n, err := countMatches(re, s)
		if err != nil {
			return "", 0, errors.Errorf("matching: %w", err)
		}
		if n == 0 {
			return s, total, nil
		}

		s, err = re.Replace(s, rule.Replacement(), -1, -1)
		if err != nil {
			return "", 0, errors.Errorf("replacing: %w", err)
		}
		total += n

		if rule.Kind == KindLiteral {
			return s, total, nil
		}
	}
	return "", 0, errors.Errorf("structural rule %q did not converge after %d passes", rule.Token, maxPasses)
}

// countMatches counts non-overlapping matches from the start of s.
func countMatches(re *regexp2.Regexp, s string) (int, error) {
	n := 0
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		n++
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}
