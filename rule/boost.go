// Package rule applies editorial CEL rules to scored items: when a rule's
// expression matches an item in its context, the item's score is
// multiplied by the rule's factor.
//
// Expressions use CEL (Common Expression Language) over two variables:
//
//   - item: id, score, category, title, tags
//   - rctx: user_id, hour, season
//
// Examples:
//
//   - `item.category == "politique" && rctx.hour < 12`
//   - `item.title.contains("CAN") && rctx.season == "harmattan"`
package rule

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/beninactu/reco/core"
	"github.com/beninactu/reco/pipeline"
)

var (
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

// env returns the shared CEL environment; it is thread-safe and reused by
// every compiled rule.
func env() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("rctx", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Boost is one editorial rule.
type Boost struct {
	// When is the CEL expression selecting items.
	When string
	// Factor multiplies the score of matching items. Values above 1
	// promote, below 1 demote. The result is clamped to [0,1] like every
	// other score.
	Factor float64
}

type compiledBoost struct {
	boost   Boost
	program cel.Program
}

// BoostNode evaluates a fixed set of editorial boosts against every item.
type BoostNode struct {
	rules []compiledBoost
}

// NewBoostNode compiles the rules once; a malformed expression fails
// construction rather than silently matching nothing at serve time.
func NewBoostNode(rules []Boost) (*BoostNode, error) {
	e, err := env()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	node := &BoostNode{rules: make([]compiledBoost, 0, len(rules))}
	for _, r := range rules {
		ast, issues := e.Compile(r.When)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.When, issues.Err())
		}
		prg, err := e.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("program rule %q: %w", r.When, err)
		}
		node.rules = append(node.rules, compiledBoost{boost: r, program: prg})
	}
	return node, nil
}

func (n *BoostNode) Name() string        { return "rule.boost" }
func (n *BoostNode) Kind() pipeline.Kind { return pipeline.KindRule }

func (n *BoostNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(n.rules) == 0 {
		return items, nil
	}

	ctxVars := contextVars(rctx)
	for _, it := range items {
		itemVars := itemVars(it)
		for _, rule := range n.rules {
			out, _, err := rule.program.Eval(map[string]any{
				"item": itemVars,
				"rctx": ctxVars,
			})
			if err != nil {
				// A rule that errors on one item skips that item only.
				continue
			}
			matched, ok := out.Value().(bool)
			if !ok || !matched {
				continue
			}
			it.Score = clamp01(it.Score * rule.boost.Factor)
			it.PutLabel("rule", core.Label{Value: rule.boost.When, Source: "rule"})
		}
	}
	return items, nil
}

func itemVars(it *core.Item) map[string]any {
	vars := map[string]any{
		"id":    it.ID,
		"score": it.Score,
	}
	if it.Article != nil {
		vars["category"] = it.Article.Category
		vars["title"] = it.Article.Title
		tags := make([]any, 0, len(it.Article.Tags))
		for _, t := range it.Article.Tags {
			tags = append(tags, t)
		}
		vars["tags"] = tags
	}
	return vars
}

func contextVars(rctx *core.RecommendContext) map[string]any {
	if rctx == nil {
		return map[string]any{}
	}
	return map[string]any{
		"user_id": rctx.UserID,
		"hour":    rctx.Hour,
		"season":  string(rctx.Season),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
