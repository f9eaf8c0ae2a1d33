package filter

import (
	"context"

	"github.com/rushteam/vidkit/core"
)

// WatchedStore 是观看历史的存储接口（由 index.StoreAdapter 满足）。
type WatchedStore interface {
	// HasWatched 判断用户是否看过某视频
	HasWatched(ctx context.Context, userID, videoID string) (bool, error)
}

// WatchedFilter 过滤掉用户已经观看过的视频。
// 关键词召回在生成候选时已排除观看集合，这里是链路上的兜底约束：
// 无论上游如何组合召回源（例如挂了 popular），推荐结果
// 永远不包含请求用户看过的视频。
type WatchedFilter struct {
	Store WatchedStore
}

// NewWatchedFilter 创建一个已观看过滤器。
func NewWatchedFilter(store WatchedStore) *WatchedFilter {
	return &WatchedFilter{Store: store}
}

func (f *WatchedFilter) Name() string { return "filter.watched" }

func (f *WatchedFilter) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	if f.Store == nil || rctx == nil || rctx.UserID == "" {
		return false, nil
	}

	watched, err := f.Store.HasWatched(ctx, rctx.UserID, item.ID)
	if err != nil {
		return false, core.NewDomainError(core.ModuleStore, core.ErrorCodeUnavailable, "store: "+err.Error())
	}
	return watched, nil
}
