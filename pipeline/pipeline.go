package pipeline

import (
	"context"

	"github.com/rushteam/vidkit/core"
)

// Pipeline 是 vidkit 的核心抽象：把推荐逻辑拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		// 每个 Node 之前检查请求预算，超时尽早上抛
		if err := ctx.Err(); err != nil {
			return nil, core.ErrQueryTimeout
		}
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
