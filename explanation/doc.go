// Package explanation provides a tree-structured breakdown of a relevance score.
//
// An Explanation pairs a computed value with a human-readable description and an
// ordered list of child explanations for the factors that produced it. Scorers
// return explanations whose value reproduces the score they computed, so a
// diagnostic tool can render exactly how a document was ranked:
//
//	expl := scorer.Explain(doc, explanation.New(2, "termFreq=2"))
//	fmt.Println(expl)
//
// Explanations are immutable after construction and safe to share across
// goroutines.
package explanation
