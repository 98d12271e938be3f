package dtree

import (
	"testing"
)

func TestBuildEmpty(t *testing.T) {
	if got := Build(nil, []int{0}, -1); got != nil {
		t.Errorf("empty dataset should yield nil, got %v", got)
	}
}

func TestBuildUniformLabels(t *testing.T) {
	rows := [][]string{
		{"sunny", "hot", "yes"},
		{"rainy", "cool", "yes"},
	}
	tree := Build(rows, []int{0, 1}, -1)
	if tree == nil || !tree.IsLeaf() || tree.Decision != "yes" {
		t.Errorf("uniform labels should build a single leaf, got %+v", tree)
	}
}

func TestBuildSplitsOnInformativeFeature(t *testing.T) {
	// Column 0 decides the label perfectly; column 1 is noise.
	rows := [][]string{
		{"sunny", "hot", "no"},
		{"sunny", "cool", "no"},
		{"overcast", "hot", "yes"},
		{"overcast", "cool", "yes"},
	}
	tree := Build(rows, []int{0, 1}, -1)
	if tree == nil || tree.IsLeaf() {
		t.Fatalf("expected an internal node, got %+v", tree)
	}
	if tree.Feature != 0 {
		t.Errorf("should split on column 0, got %d", tree.Feature)
	}
	for value, want := range map[string]string{"sunny": "no", "overcast": "yes"} {
		child, ok := tree.Children[value]
		if !ok || !child.IsLeaf() || child.Decision != want {
			t.Errorf("child[%q] = %+v, want leaf %q", value, child, want)
		}
	}
}

func TestBuildMajorityFallback(t *testing.T) {
	// No feature separates the labels; majority wins.
	rows := [][]string{
		{"a", "yes"},
		{"a", "yes"},
		{"a", "no"},
	}
	tree := Build(rows, []int{0}, -1)
	if tree == nil || !tree.IsLeaf() || tree.Decision != "yes" {
		t.Errorf("expected majority leaf yes, got %+v", tree)
	}
}

func TestClassify(t *testing.T) {
	rows := [][]string{
		{"sunny", "high", "no"},
		{"sunny", "normal", "yes"},
		{"overcast", "high", "yes"},
		{"overcast", "normal", "yes"},
		{"rainy", "high", "no"},
		{"rainy", "normal", "no"},
	}
	tree := Build(rows, []int{0, 1}, 2)
	for _, row := range rows {
		got, ok := tree.Classify(row)
		if !ok {
			t.Fatalf("Classify(%v) found no leaf", row)
		}
		if got != row[2] {
			t.Errorf("Classify(%v) = %q, want %q", row, got, row[2])
		}
	}
	if _, ok := tree.Classify([]string{"foggy", "high"}); ok {
		t.Error("unseen feature value should not reach a leaf")
	}
}
