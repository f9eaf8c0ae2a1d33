// Package service 是 vidkit 的查询门面：
// 校验请求、设定时间预算、驱动 Pipeline，并把结果整形成对外的推荐行。
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/pipeline"
)

// Recommender 对外提供 "为用户 X 推荐 N 条视频" 的查询能力。
type Recommender struct {
	pipe *pipeline.Pipeline
	cfg  core.RecommendConfig
	log  *zap.Logger
}

// RecommenderOption 配置 Recommender。
type RecommenderOption func(*Recommender)

// WithConfig 覆盖查询配置（默认 core.DefaultRecommendConfig）。
func WithConfig(cfg core.RecommendConfig) RecommenderOption {
	return func(r *Recommender) {
		r.cfg = cfg
	}
}

// WithLogger 设置日志器（默认 zap.NewNop）。
func WithLogger(log *zap.Logger) RecommenderOption {
	return func(r *Recommender) {
		r.log = log
	}
}

// NewRecommender 以给定 Pipeline 创建查询门面。
func NewRecommender(pipe *pipeline.Pipeline, opts ...RecommenderOption) *Recommender {
	r := &Recommender{
		pipe: pipe,
		cfg:  &core.DefaultRecommendConfig{},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend 返回最多 limit 条按相似度降序排列的推荐。
//
// limit <= 0 视为非法查询；没有观看历史的用户得到空列表（合法结果）；
// 存储不可达返回 UNAVAILABLE；超出时间/工作量预算返回 TIMEOUT。
func (r *Recommender) Recommend(ctx context.Context, userID string, limit int) ([]core.Recommendation, error) {
	if limit <= 0 {
		return nil, core.ErrInvalidQuery
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.DefaultTimeout())
	defer cancel()

	rctx := &core.RecommendContext{
		UserID: userID,
		Limit:  limit,
	}

	items, err := r.pipe.Run(ctx, rctx, nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = core.ErrQueryTimeout
		}
		if core.GetDomainError(err) == nil {
			err = core.NewDomainError(core.ModuleService, core.ErrorCodeUnavailable, err.Error())
		}
		r.log.Warn("recommend failed",
			zap.String("user_id", userID),
			zap.Int("limit", limit),
			zap.Error(err))
		return nil, err
	}

	// 空列表是合法结果，序列化为 [] 而不是 null
	recs := make([]core.Recommendation, 0, len(items))
	for _, item := range items {
		recs = append(recs, core.Recommendation{
			ID:              item.ID,
			Score:           item.Score,
			OriginalVideoID: item.SourceID,
		})
	}

	r.log.Debug("recommend ok",
		zap.String("user_id", userID),
		zap.Int("limit", limit),
		zap.Int("results", len(recs)))
	return recs, nil
}

// DefaultLimit 返回调用方未指定 limit 时应使用的默认值。
func (r *Recommender) DefaultLimit() int {
	return r.cfg.DefaultLimit()
}
