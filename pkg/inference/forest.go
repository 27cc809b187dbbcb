package inference

import "fmt"

// TreeNode is one node of a fitted decision tree in flattened form. Leaf
// nodes have Left set to -1 and carry the training class counts observed
// at that leaf.
type TreeNode struct {
	Left      int
	Right     int
	Feature   int
	Threshold float64
	Counts    []float64
}

// DecisionTree walks flattened nodes from the root at index 0. A feature
// value less than or equal to the node threshold descends left.
type DecisionTree struct {
	nodes []TreeNode
}

// NewDecisionTree builds a tree from flattened nodes.
func NewDecisionTree(nodes []TreeNode) (*DecisionTree, error) {
	if len(nodes) == 0 {
		return nil, &ConfigurationError{Message: "decision tree has no nodes"}
	}
	for i, n := range nodes {
		if n.Left == -1 {
			continue
		}
		if n.Left < 0 || n.Left >= len(nodes) || n.Right < 0 || n.Right >= len(nodes) {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("decision tree node %d links outside the node table", i),
			}
		}
	}

	copied := make([]TreeNode, len(nodes))
	copy(copied, nodes)
	return &DecisionTree{nodes: copied}, nil
}

// classDistribution walks to a leaf and normalizes its class counts into
// a distribution over numClasses entries.
func (t *DecisionTree) classDistribution(features []float64, numClasses int) []float64 {
	i := 0
	for t.nodes[i].Left != -1 {
		if features[t.nodes[i].Feature] <= t.nodes[i].Threshold {
			i = t.nodes[i].Left
		} else {
			i = t.nodes[i].Right
		}
	}

	counts := t.nodes[i].Counts
	distribution := make([]float64, numClasses)

	var total float64
	for c := 0; c < numClasses && c < len(counts); c++ {
		total += counts[c]
	}
	if total == 0 {
		for c := range distribution {
			distribution[c] = 1.0 / float64(numClasses)
		}
		return distribution
	}

	for c := 0; c < numClasses && c < len(counts); c++ {
		distribution[c] = counts[c] / total
	}
	return distribution
}

// RandomForest averages the leaf class distributions of its trees.
type RandomForest struct {
	trees      []*DecisionTree
	numClasses int
}

// NewRandomForest builds a forest member.
func NewRandomForest(trees []*DecisionTree, numClasses int) (*RandomForest, error) {
	if len(trees) == 0 {
		return nil, &ConfigurationError{Message: "random forest has no trees"}
	}
	if numClasses < 2 {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("random forest needs at least 2 classes, got %d", numClasses),
		}
	}

	copied := make([]*DecisionTree, len(trees))
	copy(copied, trees)
	return &RandomForest{trees: copied, numClasses: numClasses}, nil
}

func (m *RandomForest) Name() string {
	return "random_forest"
}

func (m *RandomForest) NumClasses() int {
	return m.numClasses
}

func (m *RandomForest) Probabilities(features []float64) []float64 {
	distribution := make([]float64, m.numClasses)
	for _, tree := range m.trees {
		for c, p := range tree.classDistribution(features, m.numClasses) {
			distribution[c] += p
		}
	}
	for c := range distribution {
		distribution[c] /= float64(len(m.trees))
	}
	return distribution
}
