package recall

import (
	"context"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/pipeline"
	"github.com/rushteam/vidkit/pkg/utils"
)

// KeywordStore 是关键词召回的存储接口（由 index.StoreAdapter 满足）。
type KeywordStore interface {
	// GetWatchedVideos 获取用户观看过的视频 ID 集合；未知用户返回空集合
	GetWatchedVideos(ctx context.Context, userID string) ([]string, error)

	// GetVideoKeywords 获取视频的关键词计数表；未索引视频返回空表
	GetVideoKeywords(ctx context.Context, videoID string) (map[string]int64, error)

	// GetKeywordVideos 获取包含该关键词的视频 ID 列表（倒排索引）
	GetKeywordVideos(ctx context.Context, keyword string) ([]string, error)
}

// KeywordRecall 是基于共享关键词的内容召回源。
//
// 核心思想："用户看过的视频 v1 的每个关键词 k，经倒排索引指向的
// 未观看视频 v2 都是候选"。候选按 (v1, v2) 对生成：同一候选可以与
// 不同的来源视频组成多个对；同一对经多个共享关键词到达时只生成一次。
//
// 观看历史为空时返回空结果而非错误（与"没有推荐依据"语义一致）。
type KeywordRecall struct {
	Store KeywordStore

	// MaxPairs 是单次召回允许生成的最大 (v1, v2) 对数（工作量预算）。
	// 高热关键词会造成病态扇出，超限时上抛 TIMEOUT 而不是无界执行。
	// 0 表示使用 core.DefaultRecommendConfig 的默认值。
	MaxPairs int
}

// unavailable 把存储错误升级为可重试的领域错误：
// 查询期间取不到索引必须上抛，不能被误当成"没有数据"。
func unavailable(err error) error {
	if core.GetDomainError(err) != nil {
		return err
	}
	return core.NewDomainError(core.ModuleStore, core.ErrorCodeUnavailable, "store: "+err.Error())
}

func (r *KeywordRecall) Name() string        { return "recall.keyword" }
func (r *KeywordRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall。
func (r *KeywordRecall) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口。
func (r *KeywordRecall) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Store == nil || rctx == nil || rctx.UserID == "" {
		return nil, nil
	}

	watched, err := r.Store.GetWatchedVideos(ctx, rctx.UserID)
	if err != nil {
		return nil, unavailable(err)
	}
	if len(watched) == 0 {
		return nil, nil
	}

	watchedSet := make(map[string]struct{}, len(watched))
	for _, id := range watched {
		watchedSet[id] = struct{}{}
	}

	maxPairs := r.MaxPairs
	if maxPairs <= 0 {
		maxPairs = (&core.DefaultRecommendConfig{}).DefaultMaxPairs()
	}

	seen := make(map[string]struct{}) // 已生成的 (v1, v2) 对
	out := make([]*core.Item, 0, 64)

	for _, v1 := range watched {
		if err := ctx.Err(); err != nil {
			return nil, core.ErrQueryTimeout
		}

		keywords, err := r.Store.GetVideoKeywords(ctx, v1)
		if err != nil {
			return nil, unavailable(err)
		}

		for keyword := range keywords {
			candidates, err := r.Store.GetKeywordVideos(ctx, keyword)
			if err != nil {
				return nil, unavailable(err)
			}

			for _, v2 := range candidates {
				if _, isWatched := watchedSet[v2]; isWatched {
					continue
				}
				pair := v1 + "\x00" + v2
				if _, dup := seen[pair]; dup {
					continue
				}
				seen[pair] = struct{}{}
				if len(seen) > maxPairs {
					return nil, core.ErrQueryTimeout
				}

				it := core.NewItem(v2)
				it.SourceID = v1
				it.PutLabel("recall_source", utils.Label{Value: "keyword", Source: "recall"})
				out = append(out, it)
			}
		}
	}

	return out, nil
}
