// Package ui renders CLI output with lipgloss styles.
//
// A [Palette] colors summaries, progress lines and listings. Use [PlainPalette]
// when output is not a terminal so that scripts see the bare text.
package ui
