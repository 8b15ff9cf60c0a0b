package buffer

import (
	"sort"
	"strings"

	"github.com/iw2rmb/tedit/internal/grapheme"
)

// TabWidth is the distance between tab stops, in terminal cells.
const TabWidth = 4

// Row is one line of text without its delimiter.
//
// Rows are immutable values. Every public index is a grapheme cluster index;
// byte offsets and display columns are derived tables kept in lock-step with
// the text and never leave the Row.
type Row struct {
	text string

	// offsets[i] is the byte offset where cluster i starts.
	offsets []int
	// cols[i] is the display column where cluster i starts.
	cols  []int
	width int
}

// NewRow builds a Row and its index tables from text.
func NewRow(text string) Row {
	offsets, clusters := grapheme.Offsets(text)
	cols := make([]int, len(clusters))
	col := 0
	for i, c := range clusters {
		cols[i] = col
		col += clusterCells(c, col)
	}
	return Row{
		text:    text,
		offsets: offsets,
		cols:    cols,
		width:   col,
	}
}

// clusterCells is the number of cells cluster occupies when it starts at col.
// Clusters without a printable width take one cell so that every cluster
// stays addressable by display column.
func clusterCells(cluster string, col int) int {
	if cluster == "\t" {
		return TabWidth - col%TabWidth
	}
	if grapheme.IsControl(cluster) {
		return 1
	}
	if w := grapheme.Width(cluster); w > 0 {
		return w
	}
	return 1
}

// Len returns the number of grapheme clusters.
func (r Row) Len() int { return len(r.offsets) }

func (r Row) String() string { return r.text }

// Width returns the display width of the whole row in terminal cells.
func (r Row) Width() int { return r.width }

// Equal reports whether both rows hold the same text.
func (r Row) Equal(other Row) bool { return r.text == other.text }

func (r Row) clamp(i int) int {
	return clampInt(i, 0, r.Len())
}

func (r Row) byteAt(i int) int {
	i = r.clamp(i)
	if i == r.Len() {
		return len(r.text)
	}
	return r.offsets[i]
}

// textAt returns the byte offset at which s starts at cluster i. The rest of
// the row must equal s when whole is set, or begin with it otherwise. Text
// that merged into the cluster before i starts inside that cluster, so those
// offsets are tried after the cluster boundary.
func (r Row) textAt(i int, s string, whole bool) (int, bool) {
	matches := func(b int) bool {
		if whole {
			return r.text[b:] == s
		}
		return strings.HasPrefix(r.text[b:], s)
	}
	end := r.byteAt(i)
	if matches(end) {
		return end, true
	}
	if i = r.clamp(i); i == 0 {
		return 0, false
	}
	for b := end - 1; b > r.byteAt(i-1); b-- {
		if matches(b) {
			return b, true
		}
	}
	return 0, false
}

// MonoColAt returns the display column at which cluster i starts. Indexes
// past the end saturate to the row width.
func (r Row) MonoColAt(i int) int {
	i = r.clamp(i)
	if i == r.Len() {
		return r.width
	}
	return r.cols[i]
}

// CharIdxAt returns the first cluster whose starting display column is at or
// beyond col, or Len() when col lies past the last cluster start.
func (r Row) CharIdxAt(col int) int {
	if col <= 0 {
		return 0
	}
	return sort.Search(r.Len(), func(i int) bool { return r.cols[i] >= col })
}

// Cluster returns the text of cluster i, or "" when i is out of range.
func (r Row) Cluster(i int) string {
	if i < 0 || i >= r.Len() {
		return ""
	}
	return r.text[r.byteAt(i):r.byteAt(i+1)]
}

// ClusterWidth returns the number of cells cluster i occupies in this row.
func (r Row) ClusterWidth(i int) int {
	if i < 0 || i >= r.Len() {
		return 0
	}
	return r.MonoColAt(i+1) - r.MonoColAt(i)
}

// Slice returns the text of clusters [a, b). Indexes are clamped.
func (r Row) Slice(a, b int) string {
	a, b = r.clamp(a), r.clamp(b)
	if b <= a {
		return ""
	}
	return r.text[r.byteAt(a):r.byteAt(b)]
}

// From returns the text of clusters [a, Len()).
func (r Row) From(a int) string { return r.Slice(a, r.Len()) }

// To returns the text of clusters [0, b).
func (r Row) To(b int) string { return r.Slice(0, b) }

// SplitAt splits the row before cluster i.
func (r Row) SplitAt(i int) (Row, Row) {
	return NewRow(r.To(i)), NewRow(r.From(i))
}

// Concat returns a new row holding r followed by other.
func (r Row) Concat(other Row) Row {
	return NewRow(r.text + other.text)
}
