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
	"strings"

	"github.com/dlclark/regexp2"
	"gitlab.com/tozd/go/errors"
)

const (
	notAfterDark   = `(?<!` + DarkMarker + `)`
	notBeforeDark  = `(?!\s+` + DarkMarker + `)`
	groupReference = `\$\{\d+\}|\$\d+`
)

var groupReferenceRe = regexp2.MustCompile(groupReference, regexp2.None)

// 🔍 Pattern returns the guarded regular expression for the rule.
//
// A literal rule never matches a token directly after "dark:" or a token
// followed by whitespace and "dark:". A structural rule carries the first
// guard in front of its token; its prefix is used as written.
func (r ReplacementRule) Pattern() (string, error) {
	if r.Token == "" {
		return "", errors.Errorf("token is required")
	}

	token := regexp2.Escape(r.Token)

	switch r.Kind {
	case KindLiteral:
		if r.Prefix != "" {
			return "", errors.Errorf("literal rule %q: prefix is not allowed", r.Token)
		}
		var b strings.Builder
		b.WriteString(notAfterDark)
		if r.ExceptAfter != "" {
			b.WriteString(`(?<!` + r.ExceptAfter + `)`)
		}
		b.WriteString(token)
		b.WriteString(notBeforeDark)
		return b.String(), nil
	case KindStructural:
		if r.Prefix == "" {
			return "", errors.Errorf("structural rule %q: prefix is required", r.Token)
		}
		if r.ExceptAfter != "" {
			return "", errors.Errorf("structural rule %q: except_after is not allowed", r.Token)
		}
		return r.Prefix + notAfterDark + token, nil
	default:
		return "", errors.Errorf("rule %q: unknown kind %s", r.Token, r.Kind)
	}
}

// 📝 Replacement returns the replacement string in regexp2 template syntax.
func (r ReplacementRule) Replacement() string {
	if r.Kind == KindLiteral {
		return strings.ReplaceAll(r.ToText, "$", "$$")
	}
	return r.ToText
}

// From names what the rule replaces.
func (r ReplacementRule) From() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Token
}

// To names what the rule writes, with template group references removed.
func (r ReplacementRule) To() string {
	if r.Kind == KindLiteral {
		return r.ToText
	}
	out, err := groupReferenceRe.Replace(r.ToText, "", -1, -1)
	if err != nil {
		return r.ToText
	}
	return out
}

// Description is the change log text for the rule.
func (r ReplacementRule) Description() string {
	return r.From() + " -> " + r.To()
}

// Dual returns the light/dark pair for a token, e.g. "text-black/60 dark:text-blue-400".
func Dual(light, original string) string {
	return light + " " + DarkMarker + original
}
