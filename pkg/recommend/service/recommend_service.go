package service

import "pantry/pkg/recommend/engine"

// Request selects and tunes one recommendation run. Nil weight fields
// keep the default profile; a nil Limit returns the full ranking.
type Request struct {
	Season       string
	Weights      map[string]float64
	FeasibleOnly bool
	Type         string
	Limit        *int
}

type RecommendService interface {
	Recommend(req Request) ([]engine.Ranked, error)
}
