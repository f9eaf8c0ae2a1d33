// Package index 实现关键词索引的构建：消费视频元数据与观看事件，
// 产出关键词计数表、倒排索引与观看历史。
package index

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/nlp"
)

// VideoRecord 是一条视频元数据记录。
type VideoRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WatchRecord 是一条观看事件记录。
type WatchRecord struct {
	UserID  string `json:"userId"`
	VideoID string `json:"videoId"`
}

// Builder 是关键词索引构建器。
//
// 两个独立的幂等/累加 upsert 操作：
//   - RecordWatch：集合语义，重复观看无副作用
//   - IndexVideo：append-only 频次累加。同一视频同一文本处理两次，
//     所有计数翻倍——Builder 不检测重复摄入。需要幂等重建的调用方
//     必须先显式调用 ResetVideoKeywords。
//
// 批量导入对单条记录的失败只记录不中断（见 ImportVideos / ImportWatches）。
type Builder struct {
	store core.IndexStore
	nlp   *nlp.Normalizer
	log   *zap.Logger

	// workers 是批量导入的并发度；记录间的处理顺序不保证
	workers int

	// maxFaults 是 BatchResult 中保留的失败明细上限，超出部分只计数
	maxFaults int
}

// BuilderOption 配置 Builder。
type BuilderOption func(*Builder)

// WithLogger 设置日志器，默认 zap.NewNop()。
func WithLogger(log *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithWorkers 设置批量导入并发度，默认 4。
func WithWorkers(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

// NewBuilder 创建索引构建器。normalizer 为 nil 时使用默认配置（内置英法停用词）。
func NewBuilder(store core.IndexStore, normalizer *nlp.Normalizer, opts ...BuilderOption) *Builder {
	if normalizer == nil {
		normalizer = nlp.New()
	}
	b := &Builder{
		store:     store,
		nlp:       normalizer,
		log:       zap.NewNop(),
		workers:   4,
		maxFaults: 1000,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RecordWatch 将 videoID 加入 userID 的观看集合。已存在时为 no-op，永不因重复输入失败。
func (b *Builder) RecordWatch(ctx context.Context, userID, videoID string) error {
	_, err := b.store.AddWatch(ctx, userID, videoID)
	return err
}

// IndexVideo 归一化 title + " " + description，为每个 token 将
// (videoID, token) 计数边加一（不存在则以 1 创建）。
// 文本被完全剥离时视频仍被标记为已处理——"处理后关键词为空"与
// "尚未处理"是可区分的状态。
func (b *Builder) IndexVideo(ctx context.Context, videoID, title, description string) error {
	tokens := b.nlp.Normalize(title + " " + description)

	counts := make(map[string]int64, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	return b.store.ApplyKeywordCounts(ctx, videoID, counts)
}

// ResetVideoKeywords 清空视频的全部关键词边。
// 调用方需要"重新计算"而非"继续累加"语义时，先调用它再 IndexVideo。
func (b *Builder) ResetVideoKeywords(ctx context.Context, videoID string) error {
	return b.store.ResetVideoKeywords(ctx, videoID)
}

// RecordFault 是批量导入中单条记录的失败明细，保留重试所需的上下文。
type RecordFault struct {
	// Record 标识失败的记录，例如 "video:v42" 或 "watch:u1:v2"
	Record string
	Err    error
}

// BatchResult 是一次批量导入的汇总：成功/失败计数与失败明细。
// 批处理永不整体中止，单条失败只会体现在这里。
type BatchResult struct {
	Succeeded int
	Failed    int
	Faults    []RecordFault
}

func (r *BatchResult) String() string {
	return fmt.Sprintf("succeeded=%d failed=%d", r.Succeeded, r.Failed)
}

type batchCollector struct {
	mu        sync.Mutex
	result    BatchResult
	maxFaults int
}

func (c *batchCollector) ok() {
	c.mu.Lock()
	c.result.Succeeded++
	c.mu.Unlock()
}

func (c *batchCollector) fail(record string, err error) {
	c.mu.Lock()
	c.result.Failed++
	if len(c.result.Faults) < c.maxFaults {
		c.result.Faults = append(c.result.Faults, RecordFault{Record: record, Err: err})
	}
	c.mu.Unlock()
}

// ImportVideos 消费一个惰性的视频记录序列并逐条 IndexVideo。
// 单条失败（例如存储瞬时不可用）记录日志并继续下一条，
// 十万行的导入不会因孤立故障而中止。
func (b *Builder) ImportVideos(ctx context.Context, records iter.Seq[VideoRecord]) *BatchResult {
	col := &batchCollector{maxFaults: b.maxFaults}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for rec := range records {
		rec := rec
		g.Go(func() error {
			if err := b.IndexVideo(gctx, rec.ID, rec.Title, rec.Description); err != nil {
				b.log.Warn("index video failed",
					zap.String("video_id", rec.ID),
					zap.Error(err),
				)
				col.fail("video:"+rec.ID, err)
				return nil // 不让单条失败取消整个批
			}
			col.ok()
			return nil
		})
	}
	_ = g.Wait()

	b.log.Info("video import finished",
		zap.Int("succeeded", col.result.Succeeded),
		zap.Int("failed", col.result.Failed),
	)
	return &col.result
}

// ImportWatches 消费一个惰性的观看事件序列并逐条 RecordWatch。
// 失败策略与 ImportVideos 一致。
func (b *Builder) ImportWatches(ctx context.Context, records iter.Seq[WatchRecord]) *BatchResult {
	col := &batchCollector{maxFaults: b.maxFaults}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for rec := range records {
		rec := rec
		g.Go(func() error {
			if err := b.RecordWatch(gctx, rec.UserID, rec.VideoID); err != nil {
				b.log.Warn("record watch failed",
					zap.String("user_id", rec.UserID),
					zap.String("video_id", rec.VideoID),
					zap.Error(err),
				)
				col.fail("watch:"+rec.UserID+":"+rec.VideoID, err)
				return nil
			}
			col.ok()
			return nil
		})
	}
	_ = g.Wait()

	b.log.Info("watch import finished",
		zap.Int("succeeded", col.result.Succeeded),
		zap.Int("failed", col.result.Failed),
	)
	return &col.result
}
