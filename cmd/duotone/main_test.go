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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/duotone/cmd/duotone/opts"
	"github.com/walteh/duotone/pkg/report"
	"gopkg.in/yaml.v3"
)

const page = `<Zap className="w-8 h-8 text-blue-400 mb-3" />
<code className="text-red-300">x</code>
`

const pageWant = `<Zap className="w-8 h-8 text-black/60 dark:text-blue-400 mb-3" />
<code className="text-black/70 dark:text-red-300">x</code>
`

type run struct {
	fs     afero.Fs
	stdout *bytes.Buffer
	err    error
}

func execute(t *testing.T, files map[string]string, args ...string) run {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	stdout := &bytes.Buffer{}
	o := opts.New(fs, stdout, &bytes.Buffer{})
	cmd := newRootCmd(o)
	cmd.SetArgs(args)

	return run{fs: fs, stdout: stdout, err: cmd.ExecuteContext(context.Background())}
}

func (r run) file(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(r.fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestRootCmd_Text(t *testing.T) {
	r := execute(t, map[string]string{"/site/page.tsx": page}, "/site/page.tsx")
	require.NoError(t, r.err)

	assert.Equal(t, pageWant, r.file(t, "/site/page.tsx"))

	out := r.stdout.String()
	assert.Contains(t, out, "duotone • updating color scheme in /site/page.tsx")
	assert.Contains(t, out, "Light mode: Neutral colors (black, gray, blue accent)")
	assert.Contains(t, out, "Dark mode: Vibrant colors preserved")
	assert.Contains(t, out, "✅ Applied 2 color transformations:")
	assert.Contains(t, out, "  ⟳ text-blue-400 -> text-black/60 dark:text-blue-400 (1 occurrences)\n")
	assert.Contains(t, out, "  ⟳ text-red-300 -> text-black/70 dark:text-red-300 (1 occurrences)\n")
	assert.Contains(t, out, "✅ File updated: /site/page.tsx")
	assert.NotContains(t, out, "No color classes matched")
}

func TestRootCmd_DefaultTarget(t *testing.T) {
	r := execute(t, map[string]string{opts.DefaultTarget: page})
	require.NoError(t, r.err)

	assert.Equal(t, pageWant, r.file(t, opts.DefaultTarget))
	assert.Contains(t, r.stdout.String(), "File updated: "+opts.DefaultTarget)
}

func TestRootCmd_SecondRunIsEmpty(t *testing.T) {
	r := execute(t, map[string]string{"/page.tsx": pageWant}, "/page.tsx")
	require.NoError(t, r.err)

	assert.Equal(t, pageWant, r.file(t, "/page.tsx"))
	assert.Contains(t, r.stdout.String(), "✅ Applied 0 color transformations:")
	assert.Contains(t, r.stdout.String(), "⚠️  No color classes matched in /page.tsx\n")
	assert.NotContains(t, r.stdout.String(), "⟳")
}

func TestRootCmd_DryRun(t *testing.T) {
	r := execute(t, map[string]string{"/page.tsx": page}, "--dry-run", "/page.tsx")
	require.NoError(t, r.err)

	assert.Equal(t, page, r.file(t, "/page.tsx"))

	out := r.stdout.String()
	assert.Contains(t, out, "-<Zap className=\"w-8 h-8 text-blue-400 mb-3\" />\n")
	assert.Contains(t, out, "+<Zap className=\"w-8 h-8 text-black/60 dark:text-blue-400 mb-3\" />\n")
	assert.Contains(t, out, "Dry run: /page.tsx not written")
	assert.NotContains(t, out, "File updated")
}

func TestRootCmd_Reports(t *testing.T) {
	tests := []struct {
		name   string
		format string
		decode func([]byte, any) error
	}{
		{name: "yaml", format: "yaml", decode: yaml.Unmarshal},
		{name: "json", format: "json", decode: json.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, map[string]string{"/page.tsx": page}, "-o", tt.format, "/page.tsx")
			require.NoError(t, r.err)

			var got report.Report
			require.NoError(t, tt.decode(r.stdout.Bytes(), &got))

			assert.Equal(t, "/page.tsx", got.Path)
			assert.True(t, got.Written)
			assert.Equal(t, 2, got.Total)
			require.Len(t, got.Changes, 2)
			assert.Equal(t, "icon colors", got.Changes[0].Category)
			assert.Equal(t, "code colors", got.Changes[1].Category)
			assert.Equal(t, pageWant, r.file(t, "/page.tsx"))
		})
	}
}

func TestRootCmd_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "missing_file", args: []string{"/nope.tsx"}, errContains: "stat /nope.tsx"},
		{name: "bad_output", args: []string{"-o", "toml", "/page.tsx"}, errContains: `unsupported output "toml"`},
		{name: "too_many_args", args: []string{"/a", "/b"}, errContains: "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, map[string]string{"/page.tsx": page}, tt.args...)
			require.Error(t, r.err)
			assert.Contains(t, r.err.Error(), tt.errContains)
			assert.Equal(t, page, r.file(t, "/page.tsx"))
		})
	}
}

func TestRulesCmd(t *testing.T) {
	r := execute(t, nil, "rules")
	require.NoError(t, r.err)

	out := r.stdout.String()
	assert.Contains(t, out, "icon colors (8 rules)\n")
	assert.Contains(t, out, "number displays (5 rules)\n")
	assert.Contains(t, out, "background gradients (11 rules)\n")
	assert.Contains(t, out, "border colors (14 rules)\n")
	assert.Contains(t, out, "code colors (7 rules)\n")
	assert.Contains(t, out, "  text-blue-400 -> text-black/60 dark:text-blue-400\n")
	assert.Contains(t, out, "  text-{2,3,4}xl font-{black,bold} text-red-400 -> text-black/70 dark:text-red-400\n")
}

func TestVersionCmd(t *testing.T) {
	r := execute(t, nil, "version")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout.String(), "🚀 duotone version info:")
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Platform)
}
