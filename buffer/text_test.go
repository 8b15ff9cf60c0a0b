package buffer

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// assertLines fails with a character diff when c does not hold want.
func assertLines(t *testing.T, c *Content, want ...string) {
	t.Helper()

	got := strings.Join(c.Lines(), "\n")
	exp := strings.Join(want, "\n")
	if got == exp {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(exp, got, false)
	t.Fatalf("lines mismatch (-want +got):\n%s", dmp.DiffPrettyText(diffs))
}
