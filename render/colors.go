// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/structdiff/structdiff/internal/config"
)

// styles maps marker kinds to text decorators. With colorization off every
// decorator is the identity function, which keeps plain output byte-exact.
type styles struct {
	deleted  func(string) string
	inserted func(string) string
	muted    func(string) string
	field    func(string) string
	punct    func(string) string
	bold     func(string) string
}

func (c Config) styles() styles {
	if !c.Colorize {
		ident := func(s string) string { return s }
		return styles{
			deleted:  ident,
			inserted: ident,
			muted:    ident,
			field:    ident,
			punct:    ident,
			bold:     ident,
		}
	}

	fg := func(col color.Color) func(string) string {
		style := lipgloss.NewStyle().Foreground(col)
		return func(s string) string { return style.Render(s) }
	}
	boldStyle := lipgloss.NewStyle().Bold(true)

	deleted, inserted, muted, field, punct := getColors("colors")
	return styles{
		deleted:  fg(deleted),
		inserted: fg(inserted),
		muted:    fg(muted),
		field:    fg(field),
		punct:    fg(punct),
		bold:     func(s string) string { return boldStyle.Render(s) },
	}
}

// getColors returns the configured marker colors. Each color is selected
// based on terminal background brightness so that output is reasonably
// visible for all(?) terminal themes; explicit values in the config file
// win over the defaults.
func getColors(key string) (deleted, inserted, muted, field, punct color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	deleted = resolveColor(key+".deletion", "#a8071a", "#f7768e")
	inserted = resolveColor(key+".insertion", "#237804", "#9ece6a")
	muted = resolveColor(key+".muted", "#8c8c8c", "#565f89")
	field = resolveColor(key+".field", "#0050b3", "#7aa2f7")
	punct = resolveColor(key+".punctuation", "#8c8c8c", "#565f89")

	return
}
