package model

type PolicyEvaluationResult struct {
	PolicyID string
	Effect   string
	Matched  bool
	Reason   string
	Priority int
}
