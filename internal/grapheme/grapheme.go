// Package grapheme wraps grapheme cluster segmentation and terminal cell
// widths so that every layer of the editor agrees on both.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Offsets returns the byte offset at which each grapheme cluster of text
// starts, paired with the cluster itself.
func Offsets(text string) (offsets []int, clusters []string) {
	if text == "" {
		return nil, nil
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		offsets = append(offsets, from)
		clusters = append(clusters, g.Str())
	}
	return offsets, clusters
}

// Width returns the terminal cell width of a single cluster.
//
// Tabs and control characters report 0; callers decide how to lay them out.
func Width(cluster string) int {
	if cluster == "" || cluster == "\t" {
		return 0
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// go-runewidth misses some emoji presentation sequences.
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// IsControl reports whether cluster starts with a C0/C1 control character.
func IsControl(cluster string) bool {
	if cluster == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return r < 0x20 || (r >= 0x7f && r < 0xa0)
}

// IsSpace reports whether every rune of cluster is whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
