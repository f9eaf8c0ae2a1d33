package filter

import (
	"context"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/pipeline"
	"github.com/rushteam/vidkit/pkg/utils"
)

// FilterNode 是过滤 Node，可以组合多个过滤器进行过滤。
// 如果任何一个过滤器返回 true，该物品就会被过滤掉。
type FilterNode struct {
	Filters []Filter
}

func (n *FilterNode) Name() string        { return "filter.node" }
func (n *FilterNode) Kind() pipeline.Kind { return pipeline.KindFilter }

func (n *FilterNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(n.Filters) == 0 || len(items) == 0 {
		return items, nil
	}

	out := make([]*core.Item, 0, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}

		keep := true
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, item)
			if err != nil {
				// 领域错误（存储不可达等）上抛；其余错误视为该过滤器弃权
				if core.GetDomainError(err) != nil {
					return nil, err
				}
				continue
			}
			if ok {
				keep = false
				item.PutLabel("filtered", utils.Label{Value: "true", Source: f.Name()})
				break
			}
		}

		if keep {
			out = append(out, item)
		}
	}

	return out, nil
}
