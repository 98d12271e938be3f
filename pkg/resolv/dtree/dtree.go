// Package dtree builds ID3-style decision trees over rows of categorical
// field values: pick the feature with the highest information gain, split,
// and recurse. The target field holds the class label.
package dtree

import (
	"math"
)

// Node is a decision-tree node. A leaf carries a Decision; an internal node
// carries the Feature index it splits on and one child per observed value.
type Node struct {
	Feature  int
	Decision string
	Children map[string]*Node
	leaf     bool
}

// IsLeaf reports whether the node carries a final decision.
func (n *Node) IsLeaf() bool { return n.leaf }

// Classify walks the tree for a row, returning the decision and whether a
// leaf was reached. An unseen feature value stops the walk.
func (n *Node) Classify(row []string) (string, bool) {
	if n == nil {
		return "", false
	}
	if n.leaf {
		return n.Decision, true
	}
	if n.Feature < 0 || n.Feature >= len(row) {
		return "", false
	}
	child, ok := n.Children[row[n.Feature]]
	if !ok {
		return "", false
	}
	return child.Classify(row)
}

// Build constructs a decision tree from equal-length rows. features lists
// the column indexes available for splitting; target is the class-label
// column, with negative values counting from the end of the row (the usual
// -1 for the last field). Returns nil for an empty dataset.
func Build(rows [][]string, features []int, target int) *Node {
	if len(rows) == 0 {
		return nil
	}
	if target < 0 {
		target += len(rows[0])
	}
	return build(rows, features, target)
}

func build(rows [][]string, features []int, target int) *Node {
	// All labels agree: leaf.
	first := rows[0][target]
	uniform := true
	for _, row := range rows[1:] {
		if row[target] != first {
			uniform = false
			break
		}
	}
	if uniform {
		return &Node{Decision: first, leaf: true}
	}

	// No features left: majority leaf.
	if len(features) == 0 {
		return &Node{Decision: majorityClass(rows, target), leaf: true}
	}

	best := -1
	maxGain := math.Inf(-1)
	for _, f := range features {
		if g := informationGain(rows, f, target); g > maxGain {
			maxGain = g
			best = f
		}
	}
	// No split helps: majority leaf.
	if maxGain <= 0 {
		return &Node{Decision: majorityClass(rows, target), leaf: true}
	}

	remaining := make([]int, 0, len(features)-1)
	for _, f := range features {
		if f != best {
			remaining = append(remaining, f)
		}
	}

	root := &Node{Feature: best, Children: make(map[string]*Node)}
	for value, subset := range splitByFeature(rows, best) {
		root.Children[value] = build(subset, remaining, target)
	}
	return root
}

// entropy computes the Shannon entropy of the label distribution.
func entropy(rows [][]string, target int) float64 {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row[target]]++
	}
	total := float64(len(rows))
	h := 0.0
	for _, count := range counts {
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h
}

// splitByFeature groups rows by their value in the feature column.
func splitByFeature(rows [][]string, feature int) map[string][][]string {
	subsets := make(map[string][][]string)
	for _, row := range rows {
		v := row[feature]
		subsets[v] = append(subsets[v], row)
	}
	return subsets
}

// informationGain is the entropy reduction from splitting on the feature.
func informationGain(rows [][]string, feature, target int) float64 {
	total := float64(len(rows))
	weighted := 0.0
	for _, subset := range splitByFeature(rows, feature) {
		weighted += float64(len(subset)) / total * entropy(subset, target)
	}
	return entropy(rows, target) - weighted
}

// majorityClass returns the most common label.
func majorityClass(rows [][]string, target int) string {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row[target]]++
	}
	best := ""
	bestCount := -1
	for label, count := range counts {
		if count > bestCount {
			best = label
			bestCount = count
		}
	}
	return best
}
