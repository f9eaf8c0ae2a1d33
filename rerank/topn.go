// Package rerank 在排序结果上做截断等最终调整。
package rerank

import (
	"context"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，在排序之后截取前 N 个结果。
//
// N > 0 时固定截断到 N；N == 0 时使用请求的 rctx.Limit——
// 默认 Pipeline 用的就是这种按请求截断的形态。
type TopNNode struct {
	N int
}

func (n *TopNNode) Name() string        { return "rerank.topn" }
func (n *TopNNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopNNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	limit := n.N
	if limit <= 0 && rctx != nil {
		limit = rctx.Limit
	}
	if limit <= 0 || len(items) <= limit {
		return items, nil
	}
	return items[:limit], nil
}
