package modelstore

import (
	"fmt"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/inference"
)

// BuildClassifier assembles a ready classifier from decoded artifact
// parameters. Every coherence problem surfaces here as a
// ConfigurationError, so a successfully built classifier can never fail
// a prediction for configuration reasons.
func BuildClassifier(a *Artifact) (inference.Classifier, error) {
	scaler, err := inference.NewRobustScaler(a.Scaler.Center, a.Scaler.Scale)
	if err != nil {
		return nil, err
	}

	members, err := buildMembers(a)
	if err != nil {
		return nil, err
	}

	switch a.ModelType {
	case ModelTypeSoftVoting:
		return inference.NewSoftVotingEnsemble(scaler, a.Labels, members)
	case ModelTypeSingle:
		if len(members) != 1 {
			return nil, &inference.ConfigurationError{
				Message: fmt.Sprintf("single classifier artifact carries %d member blocks", len(members)),
			}
		}
		return inference.NewSingleClassifier(scaler, a.Labels, members[0])
	default:
		return nil, &inference.ConfigurationError{
			Message: fmt.Sprintf("unknown model type %q", a.ModelType),
		}
	}
}

// buildMembers constructs the members present in the artifact, in a
// fixed order so assembly is deterministic: logistic regression, svm,
// random forest, mlp.
func buildMembers(a *Artifact) ([]inference.Member, error) {
	var members []inference.Member

	if a.Logistic != nil {
		members = append(members, inference.NewLogisticRegression(a.Logistic.Weights, a.Logistic.Intercept))
	}

	if a.SVM != nil {
		svm, err := inference.NewRBFSVM(a.SVM.SupportVectors, a.SVM.DualCoefs,
			a.SVM.Gamma, a.SVM.Intercept, a.SVM.ProbA, a.SVM.ProbB)
		if err != nil {
			return nil, err
		}
		members = append(members, svm)
	}

	if a.Forest != nil {
		forest, err := buildForest(a.Forest)
		if err != nil {
			return nil, err
		}
		members = append(members, forest)
	}

	if a.MLP != nil {
		layers := make([]inference.Layer, len(a.MLP.Layers))
		for i, lp := range a.MLP.Layers {
			layers[i] = inference.Layer{Weights: lp.Weights, Biases: lp.Biases}
		}
		mlp, err := inference.NewMLP(layers)
		if err != nil {
			return nil, err
		}
		members = append(members, mlp)
	}

	if len(members) == 0 {
		return nil, &inference.ConfigurationError{Message: "artifact carries no member parameter blocks"}
	}
	return members, nil
}

// buildForest expands the parallel node arrays of each tree into walkable
// node structs.
func buildForest(p *ForestParams) (*inference.RandomForest, error) {
	trees := make([]*inference.DecisionTree, len(p.Trees))
	for ti, tp := range p.Trees {
		n := len(tp.Left)
		if len(tp.Right) != n || len(tp.Feature) != n || len(tp.Threshold) != n || len(tp.Counts) != n {
			return nil, &inference.ConfigurationError{
				Message: fmt.Sprintf("forest tree %d has ragged node arrays", ti),
			}
		}

		nodes := make([]inference.TreeNode, n)
		for i := 0; i < n; i++ {
			nodes[i] = inference.TreeNode{
				Left:      tp.Left[i],
				Right:     tp.Right[i],
				Feature:   tp.Feature[i],
				Threshold: tp.Threshold[i],
				Counts:    tp.Counts[i],
			}
		}

		tree, err := inference.NewDecisionTree(nodes)
		if err != nil {
			return nil, err
		}
		trees[ti] = tree
	}

	return inference.NewRandomForest(trees, p.NumClasses)
}
