// Package reco is the recommendation and behavioral-tracking core of the
// Bénin Actu news site.
//
// Design points:
//   - Pipeline-first: the flow is composed of nodes (recall -> rank ->
//     rule -> rerank), assembled in code or from YAML config
//   - Local-first: behavior is tracked per user in memory, snapshotted to
//     a key-value backend, and every score is a pure function of that
//     record plus the catalog
//   - Best-effort everywhere: missing data has neutral defaults, storage
//     failures are logged and degrade, no recommendation request fails
package reco

import "github.com/beninactu/reco/pipeline"

// Lightweight facade so callers can import the root package for the core
// abstractions.
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindRank        = pipeline.KindRank
	KindRule        = pipeline.KindRule
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
