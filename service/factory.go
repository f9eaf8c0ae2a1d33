package service

import (
	"github.com/rushteam/vidkit/config"
	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/filter"
	"github.com/rushteam/vidkit/pipeline"
	"github.com/rushteam/vidkit/rank"
	"github.com/rushteam/vidkit/recall"
	"github.com/rushteam/vidkit/rerank"
)

// DefaultPipeline 返回内容推荐的标准四段链路：
// 关键词召回 -> 已观看过滤 -> Jaccard 相似度排序 -> TopN 截断。
//
// 标准链路不含热门召回：没有观看历史的用户应得到空列表而非兜底内容，
// 需要兜底的场景通过配置文件显式加 recall.popular。
func DefaultPipeline(store core.IndexStore, cfg core.RecommendConfig) *pipeline.Pipeline {
	if cfg == nil {
		cfg = &core.DefaultRecommendConfig{}
	}
	return &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&recall.Fanout{
				Sources: []recall.Source{
					&recall.KeywordRecall{Store: store, MaxPairs: cfg.DefaultMaxPairs()},
				},
				Dedup: true,
			},
			&filter.FilterNode{
				Filters: []filter.Filter{filter.NewWatchedFilter(store)},
			},
			&rank.JaccardNode{Store: store},
			&rerank.TopNNode{},
		},
	}
}

// NewDefaultRecommender 用默认链路创建 Recommender。
func NewDefaultRecommender(store core.IndexStore, opts ...RecommenderOption) *Recommender {
	r := NewRecommender(nil, opts...)
	r.pipe = DefaultPipeline(store, r.cfg)
	return r
}

// NewRecommenderFromConfig 从 YAML 配置文件构建 Recommender。
func NewRecommenderFromConfig(path string, deps config.Deps, opts ...RecommenderOption) (*Recommender, error) {
	cfg, err := pipeline.LoadFromYAML(path)
	if err != nil {
		return nil, err
	}
	pipe, err := cfg.BuildPipeline(config.NewFactory(deps))
	if err != nil {
		return nil, err
	}
	return NewRecommender(pipe, opts...), nil
}
