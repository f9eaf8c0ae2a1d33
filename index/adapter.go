package index

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/rushteam/vidkit/core"
)

// Key 前缀约定。所有索引数据共用一个 KeyValueStore 实例，靠前缀隔离。
const (
	// keyVideoKeywords 前缀：hash，keyword -> count
	keyVideoKeywords = "video:keywords:"
	// keyKeywordVideos 前缀：set，包含该关键词的视频 ID（倒排索引）
	keyKeywordVideos = "keyword:videos:"
	// keyUserWatched 前缀：set，用户观看过的视频 ID
	keyUserWatched = "user:watched:"
	// keyVideosIndexed：set，已处理过的视频 ID（与"关键词为空"区分）
	keyVideosIndexed = "videos:indexed"
	// keyWatchCount：zset，视频累计观看人数
	keyWatchCount = "videos:watch_count"
)

// StoreAdapter 把 core.KeyValueStore 适配为 core.IndexStore，
// 承载索引的 key 编排。召回/排序/过滤各自的窄接口都由它满足。
type StoreAdapter struct {
	store core.KeyValueStore
	log   *zap.Logger
}

// AdapterOption 配置 StoreAdapter。
type AdapterOption func(*StoreAdapter)

// WithAdapterLogger 设置日志器，默认 zap.NewNop()。
func WithAdapterLogger(log *zap.Logger) AdapterOption {
	return func(a *StoreAdapter) {
		if log != nil {
			a.log = log
		}
	}
}

// NewStoreAdapter 创建索引存储适配器。
func NewStoreAdapter(s core.KeyValueStore, opts ...AdapterOption) *StoreAdapter {
	a := &StoreAdapter{store: s, log: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var _ core.IndexStore = (*StoreAdapter)(nil)

func (a *StoreAdapter) Name() string { return a.store.Name() }

// AddWatch 添加观看边。SAdd 的集合语义保证幂等：
// 只有第一次观看会计入观看排行。
func (a *StoreAdapter) AddWatch(ctx context.Context, userID, videoID string) (bool, error) {
	added, err := a.store.SAdd(ctx, keyUserWatched+userID, videoID)
	if err != nil {
		return false, err
	}
	if added == 0 {
		return false, nil
	}
	// 排行是软聚合：更新失败不影响已经写入的观看边，但要留下痕迹，
	// 持续失败时热门召回的数据会陈旧
	if err := a.store.ZIncrBy(ctx, keyWatchCount, 1, videoID); err != nil {
		a.log.Warn("watch count update failed",
			zap.String("video_id", videoID),
			zap.Error(err))
	}
	return true, nil
}

// ApplyKeywordCounts 落盘一次 IndexVideo 的关键词增量并标记视频已处理。
// 每条边经 HIncrBy 做原子 upsert-and-increment；counts 为空时只做标记。
func (a *StoreAdapter) ApplyKeywordCounts(ctx context.Context, videoID string, counts map[string]int64) error {
	for keyword, n := range counts {
		if n <= 0 {
			continue
		}
		if _, err := a.store.HIncrBy(ctx, keyVideoKeywords+videoID, keyword, n); err != nil {
			return err
		}
		if _, err := a.store.SAdd(ctx, keyKeywordVideos+keyword, videoID); err != nil {
			return err
		}
	}
	_, err := a.store.SAdd(ctx, keyVideosIndexed, videoID)
	return err
}

// ResetVideoKeywords 清空视频的关键词边，包括倒排索引中的成员关系。
// 视频保持"已处理"状态：重置不等于从索引中消失。
func (a *StoreAdapter) ResetVideoKeywords(ctx context.Context, videoID string) error {
	keywords, err := a.GetVideoKeywords(ctx, videoID)
	if err != nil {
		return err
	}
	for keyword := range keywords {
		if err := a.store.SRem(ctx, keyKeywordVideos+keyword, videoID); err != nil {
			return err
		}
	}
	return a.store.Delete(ctx, keyVideoKeywords+videoID)
}

func (a *StoreAdapter) GetWatchedVideos(ctx context.Context, userID string) ([]string, error) {
	return a.store.SMembers(ctx, keyUserWatched+userID)
}

func (a *StoreAdapter) HasWatched(ctx context.Context, userID, videoID string) (bool, error) {
	return a.store.SIsMember(ctx, keyUserWatched+userID, videoID)
}

func (a *StoreAdapter) GetVideoKeywords(ctx context.Context, videoID string) (map[string]int64, error) {
	raw, err := a.store.HGetAll(ctx, keyVideoKeywords+videoID)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(raw))
	for keyword, val := range raw {
		n, err := strconv.ParseInt(string(val), 10, 64)
		if err != nil {
			// 损坏的计数按 1 处理：边存在即 count >= 1
			n = 1
		}
		counts[keyword] = n
	}
	return counts, nil
}

func (a *StoreAdapter) GetKeywordVideos(ctx context.Context, keyword string) ([]string, error) {
	return a.store.SMembers(ctx, keyKeywordVideos+keyword)
}

func (a *StoreAdapter) TopWatched(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	return a.store.ZRange(ctx, keyWatchCount, 0, int64(n)-1)
}

func (a *StoreAdapter) HasVideo(ctx context.Context, videoID string) (bool, error) {
	return a.store.SIsMember(ctx, keyVideosIndexed, videoID)
}

func (a *StoreAdapter) HasUser(ctx context.Context, userID string) (bool, error) {
	watched, err := a.store.SMembers(ctx, keyUserWatched+userID)
	if err != nil {
		return false, err
	}
	return len(watched) > 0, nil
}

func (a *StoreAdapter) HasKeyword(ctx context.Context, keyword string) (bool, error) {
	videos, err := a.store.SMembers(ctx, keyKeywordVideos+keyword)
	if err != nil {
		return false, err
	}
	return len(videos) > 0, nil
}
