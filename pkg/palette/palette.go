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

// Package palette holds the fixed light/dark color rule table.
//
// Light mode collapses to neutral black tones with a single blue accent for
// number displays; dark mode keeps the original vibrant class.
package palette

import (
	"github.com/walteh/duotone/pkg/text"
)

// 🏷️ Category names, in application order
const (
	IconColors          = "icon colors"
	NumberDisplays      = "number displays"
	BackgroundGradients = "background gradients"
	BorderColors        = "border colors"
	CodeColors          = "code colors"
)

// 🎨 Light-mode replacements
const (
	iconLight     = "text-black/60"
	accentLight   = "text-blue-600"
	mutedLight    = "text-black/70"
	borderLight   = "border-black/10"
	gradientLight = "black/5"
)

const (
	sizeClasses   = `text-2xl|text-3xl|text-4xl`
	weightClasses = `font-black|font-bold`

	// numberPrefix captures (size)(anything)(weight)(anything) within one attribute string
	numberPrefix = `(` + sizeClasses + `)([^"]*?)(` + weightClasses + `)([^"]*?)`

	// numberContext is numberPrefix without groups, used to keep icon rules off number displays
	numberContext = `(?:` + sizeClasses + `)[^"]*?(?:` + weightClasses + `)[^"]*?`

	numberTemplate = "${1}${2}${3}${4}"
	numberLabel    = "text-{2,3,4}xl font-{black,bold} "
)

var iconTokens = []string{
	"text-blue-400",
	"text-green-400",
	"text-purple-400",
	"text-yellow-400",
	"text-pink-400",
	"text-cyan-400",
	"text-red-400",
	"text-orange-400",
}

// numberTokens maps each number display color to its light-mode class.
// Red stays neutral so error states never take the brand accent.
var numberTokens = []struct {
	token string
	light string
}{
	{"text-blue-400", accentLight},
	{"text-green-400", accentLight},
	{"text-purple-400", accentLight},
	{"text-yellow-400", accentLight},
	{"text-red-400", mutedLight},
}

var gradientTokens = []struct {
	direction string
	token     string
}{
	{"from", "from-blue-500/20"},
	{"to", "to-cyan-500/20"},
	{"to", "to-purple-500/20"},
	{"from", "from-green-500/20"},
	{"to", "to-emerald-500/20"},
	{"from", "from-purple-500/20"},
	{"to", "to-pink-500/20"},
	{"from", "from-yellow-500/20"},
	{"to", "to-orange-500/20"},
	{"from", "from-red-500/20"},
	{"from", "from-cyan-500/20"},
}

var borderTokens = []string{
	"border-blue-500/30",
	"border-green-500/30",
	"border-purple-500/30",
	"border-yellow-500/30",
	"border-red-500/30",
	"border-cyan-500/30",
	"border-pink-500/30",
	"border-orange-500/30",
	"border-blue-500/20",
	"border-green-500/20",
	"border-purple-500/20",
	"border-yellow-500/20",
	"border-red-500/20",
	"border-cyan-500/20",
}

var codeTokens = []string{
	"text-blue-300",
	"text-green-300",
	"text-cyan-300",
	"text-purple-300",
	"text-yellow-300",
	"text-red-300",
	"text-pink-300",
}

// 📚 Default returns the full rule set in application order.
// Each call builds a fresh copy.
func Default() text.RuleSet {
	return text.RuleSet{
		Icons(),
		Numbers(),
		Gradients(),
		Borders(),
		Code(),
	}
}

// Icons returns the icon color category.
func Icons() text.Category {
	claimed := make(map[string]bool, len(numberTokens))
	for _, n := range numberTokens {
		claimed[n.token] = true
	}

	rules := make([]text.ReplacementRule, 0, len(iconTokens))
	for _, token := range iconTokens {
		rule := literal(token, iconLight)
		if claimed[token] {
			rule.ExceptAfter = numberContext
		}
		rules = append(rules, rule)
	}
	return text.Category{Name: IconColors, Rules: rules}
}

// Numbers returns the number/stat display category.
func Numbers() text.Category {
	rules := make([]text.ReplacementRule, 0, len(numberTokens))
	for _, n := range numberTokens {
		rules = append(rules, text.ReplacementRule{
			Kind:   text.KindStructural,
			Prefix: numberPrefix,
			Token:  n.token,
			ToText: numberTemplate + text.Dual(n.light, n.token),
			Label:  numberLabel + n.token,
		})
	}
	return text.Category{Name: NumberDisplays, Rules: rules}
}

// Gradients returns the background gradient stop category.
func Gradients() text.Category {
	rules := make([]text.ReplacementRule, 0, len(gradientTokens))
	for _, g := range gradientTokens {
		rules = append(rules, literal(g.token, g.direction+"-"+gradientLight))
	}
	return text.Category{Name: BackgroundGradients, Rules: rules}
}

// Borders returns the border color category.
func Borders() text.Category {
	return literals(BorderColors, borderTokens, borderLight)
}

// Code returns the code/mono text color category.
func Code() text.Category {
	return literals(CodeColors, codeTokens, mutedLight)
}

func literals(name string, tokens []string, light string) text.Category {
	rules := make([]text.ReplacementRule, 0, len(tokens))
	for _, token := range tokens {
		rules = append(rules, literal(token, light))
	}
	return text.Category{Name: name, Rules: rules}
}

func literal(token, light string) text.ReplacementRule {
	return text.ReplacementRule{
		Kind:   text.KindLiteral,
		Token:  token,
		ToText: text.Dual(light, token),
	}
}
