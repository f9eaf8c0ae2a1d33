package recall

import (
	"context"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/pipeline"
	"github.com/rushteam/vidkit/pkg/utils"
)

// PopularStore 是热门召回的存储接口（由 index.StoreAdapter 满足）。
type PopularStore interface {
	// TopWatched 按累计观看人数降序返回前 n 个视频 ID
	TopWatched(ctx context.Context, n int) ([]string, error)
}

// Popular 是按累计观看人数的热门召回源。
// 不读取用户历史，无个性化；默认 Pipeline 不启用它——
// 观看历史为空的用户必须得到空结果，而不是热门兜底。
// 需要兜底的场景可在配置里显式挂载（type: recall.popular）。
type Popular struct {
	Store PopularStore

	// TopK 返回前 TopK 个视频，默认 20
	TopK int
}

func (r *Popular) Name() string        { return "recall.popular" }
func (r *Popular) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall。
func (r *Popular) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口。
func (r *Popular) Recall(
	ctx context.Context,
	_ *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Store == nil {
		return nil, nil
	}

	topK := r.TopK
	if topK <= 0 {
		topK = 20
	}

	ids, err := r.Store.TopWatched(ctx, topK)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(ids))
	for _, id := range ids {
		it := core.NewItem(id)
		it.PutLabel("recall_source", utils.Label{Value: "popular", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
