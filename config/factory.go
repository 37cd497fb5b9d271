// Package config wires the built-in nodes into a pipeline.NodeFactory so
// pipelines can be assembled from YAML/JSON files.
package config

import (
	"fmt"
	"time"

	"github.com/beninactu/reco/behavior"
	"github.com/beninactu/reco/core"
	"github.com/beninactu/reco/pipeline"
	"github.com/beninactu/reco/pkg/conv"
	"github.com/beninactu/reco/rank"
	"github.com/beninactu/reco/recall"
	"github.com/beninactu/reco/rerank"
	"github.com/beninactu/reco/rule"
)

// Deps are the runtime collaborators node builders close over. Config
// files name node types and tuning values; the live catalog and stores
// come from here.
type Deps struct {
	Catalog  core.Catalog
	Behavior *behavior.Store
	Store    core.Store
}

// DefaultFactory returns a factory with every built-in node registered.
func DefaultFactory(deps Deps) *pipeline.NodeFactory {
	factory := pipeline.NewNodeFactory()

	factory.Register("recall.catalog", func(_ map[string]any) (pipeline.Node, error) {
		return &recall.CatalogSource{Catalog: deps.Catalog}, nil
	})

	factory.Register("recall.trending", func(cfg map[string]any) (pipeline.Node, error) {
		return &recall.Trending{
			Store:   deps.Store,
			Catalog: deps.Catalog,
			Key:     conv.ConfigGet[string](cfg, "key", ""),
			TopK:    conv.ConfigGetInt(cfg, "top_k", 10),
		}, nil
	})

	factory.Register("recall.fanout", func(cfg map[string]any) (pipeline.Node, error) {
		return buildFanout(deps, cfg)
	})

	factory.Register("rank.score", func(cfg map[string]any) (pipeline.Node, error) {
		node := rank.NewScoreNode(deps.Catalog, deps.Behavior)
		if raw, ok := cfg["weights"].(map[string]any); ok {
			node.Weights = weightsFromConfig(conv.MapToFloat64(raw))
		}
		return node, nil
	})

	factory.Register("rule.boost", func(cfg map[string]any) (pipeline.Node, error) {
		return buildBoost(cfg)
	})

	factory.Register("rerank.topn", func(cfg map[string]any) (pipeline.Node, error) {
		return &rerank.TopN{N: conv.ConfigGetInt(cfg, "n", 0)}, nil
	})

	return factory
}

func buildFanout(deps Deps, cfg map[string]any) (pipeline.Node, error) {
	rawSources, ok := cfg["sources"].([]any)
	if !ok {
		return nil, fmt.Errorf("fanout: sources not found or invalid")
	}

	sources := make([]recall.Source, 0, len(rawSources))
	for _, raw := range rawSources {
		sc, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		switch srcType := conv.ConfigGet[string](sc, "type", ""); srcType {
		case "catalog":
			sources = append(sources, &recall.CatalogSource{Catalog: deps.Catalog})
		case "trending":
			sources = append(sources, &recall.Trending{
				Store:   deps.Store,
				Catalog: deps.Catalog,
				Key:     conv.ConfigGet[string](sc, "key", ""),
				TopK:    conv.ConfigGetInt(sc, "top_k", 10),
			})
		default:
			return nil, fmt.Errorf("fanout: unknown source type: %s", srcType)
		}
	}

	fanout := &recall.Fanout{
		Sources: sources,
		Dedup:   conv.ConfigGet[bool](cfg, "dedup", true),
	}
	if sec := conv.ConfigGetInt(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	return fanout, nil
}

func buildBoost(cfg map[string]any) (pipeline.Node, error) {
	rawRules, ok := cfg["rules"].([]any)
	if !ok {
		return nil, fmt.Errorf("boost: rules not found or invalid")
	}

	rules := make([]rule.Boost, 0, len(rawRules))
	for _, raw := range rawRules {
		rc, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		when := conv.ConfigGet[string](rc, "when", "")
		if when == "" {
			return nil, fmt.Errorf("boost: rule missing 'when' expression")
		}
		rules = append(rules, rule.Boost{
			When:   when,
			Factor: conv.ConfigGetFloat(rc, "factor", 1),
		})
	}
	return rule.NewBoostNode(rules)
}

// weightsFromConfig overlays configured weights on the defaults, so a
// config may tune one factor without restating the rest.
func weightsFromConfig(m map[string]float64) rank.Weights {
	w := rank.DefaultWeights()
	if v, ok := m["category"]; ok {
		w.Category = v
	}
	if v, ok := m["reading_time"]; ok {
		w.ReadingTime = v
	}
	if v, ok := m["recency"]; ok {
		w.Recency = v
	}
	if v, ok := m["popularity"]; ok {
		w.Popularity = v
	}
	if v, ok := m["similarity"]; ok {
		w.Similarity = v
	}
	return w
}
