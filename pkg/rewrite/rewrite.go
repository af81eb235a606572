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

package rewrite

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/duotone/pkg/palette"
	"github.com/walteh/duotone/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the rewriter
type Options struct {
	// Fs is the filesystem holding the target document. Defaults to the OS filesystem.
	Fs afero.Fs
	// Replacer applies the rules. Defaults to a text.GuardedReplacer.
	Replacer text.TextReplacer
	// Rules is the rule set. Defaults to palette.Default().
	Rules text.RuleSet
	// DryRun computes changes without writing the file back
	DryRun bool
}

// 🎯 Rewriter rewrites a single document in place
type Rewriter struct {
	fs       afero.Fs
	replacer text.TextReplacer
	rules    text.RuleSet
	dryRun   bool
}

// 📄 Result describes one rewrite
type Result struct {
	Path    string
	Changes []text.ChangeRecord
	Before  []byte
	After   []byte
	// Written reports whether the file was written back
	Written bool
}

// Total returns the number of substitutions across all changes.
func (r *Result) Total() int {
	n := 0
	for _, c := range r.Changes {
		n += c.Count
	}
	return n
}

// 🏭 New creates a rewriter, filling in defaults and validating the rules
func New(opts Options) (*Rewriter, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewGuardedReplacer()
	}
	if opts.Rules == nil {
		opts.Rules = palette.Default()
	}

	if err := opts.Replacer.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &Rewriter{
		fs:       opts.Fs,
		replacer: opts.Replacer,
		rules:    opts.Rules,
		dryRun:   opts.DryRun,
	}, nil
}

// 🏃 Rewrite reads path, applies every rule, and writes the result back over path.
//
// The write always happens, even when nothing matched. There is no atomic
// rename: a failed write leaves whatever the filesystem managed to write.
func (r *Rewriter) Rewrite(ctx context.Context, path string) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	info, err := r.fs.Stat(path)
	if err != nil {
		return nil, errors.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}

	before, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	replaced, err := r.replacer.ReplaceText(logger.WithContext(ctx), bytes.NewReader(before), r.rules)
	if err != nil {
		return nil, errors.Errorf("replacing colors in %s: %w", path, err)
	}

	result := &Result{
		Path:    path,
		Changes: replaced.Changes,
		Before:  before,
		After:   replaced.ModifiedContent,
	}

	if r.dryRun {
		logger.Info().Int("rules", len(result.Changes)).Int("replacements", result.Total()).Msg("dry run, not writing")
		return result, nil
	}

	if err := afero.WriteFile(r.fs, path, result.After, info.Mode().Perm()); err != nil {
		return nil, errors.Errorf("writing %s: %w", path, err)
	}
	result.Written = true

	logger.Info().
		Int("rules", len(result.Changes)).
		Int("replacements", result.Total()).
		Bool("modified", replaced.WasModified).
		Msg("rewrote file")

	return result, nil
}

// Rewrite applies the default palette to path on the OS filesystem and
// returns the change records in application order.
func Rewrite(ctx context.Context, path string) ([]text.ChangeRecord, error) {
	rw, err := New(Options{})
	if err != nil {
		return nil, err
	}
	result, err := rw.Rewrite(ctx, path)
	if err != nil {
		return nil, err
	}
	return result.Changes, nil
}
