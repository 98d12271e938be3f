package htmlkb

import (
	"strings"
	"testing"
)

const page = `
<html><body>
<h1>Exercise 3: resolution</h1>
<p>Show that the following knowledge base entails Evil(John).</p>
<ul>
  <li>¬King(x) | ¬Greedy(x) | Evil(x)</li>
  <li>King(John)</li>
  <li>Greedy(x)</li>
</ul>
<p>Hint: use <code>A ∨ ¬B</code> style clauses.</p>
<ul>
  <li>not a clause at all!!</li>
  <li></li>
</ul>
</body></html>
`

func TestExtract(t *testing.T) {
	clauses, err := Extract(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := [][]string{
		{"¬King(x)", "¬Greedy(x)", "Evil(x)"},
		{"King(John)"},
		{"Greedy(x)"},
		{"A", "¬B"},
	}
	if len(clauses) != len(want) {
		t.Fatalf("expected %d clauses, got %d: %v", len(want), len(clauses), clauses)
	}
	for i := range want {
		if len(clauses[i]) != len(want[i]) {
			t.Errorf("clause %d = %v, want %v", i, clauses[i], want[i])
			continue
		}
		for j := range want[i] {
			if clauses[i][j] != want[i][j] {
				t.Errorf("clause %d literal %d = %q, want %q", i, j, clauses[i][j], want[i][j])
			}
		}
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	clauses, err := Extract(strings.NewReader("<html><body><p>prose only</p></body></html>"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(clauses) != 0 {
		t.Errorf("expected no clauses, got %v", clauses)
	}
}
