// Package config 提供配置驱动的 Pipeline 构建：
// 把 YAML/JSON 里的 node 声明翻译成 vidkit 内置 Node。
package config

import (
	"fmt"
	"time"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/filter"
	"github.com/rushteam/vidkit/pipeline"
	"github.com/rushteam/vidkit/pkg/conv"
	"github.com/rushteam/vidkit/rank"
	"github.com/rushteam/vidkit/recall"
	"github.com/rushteam/vidkit/rerank"
)

// Deps 是构建 Node 时注入的运行时依赖。
// 配置只描述拓扑与参数，存储实例由进程启动时提供。
type Deps struct {
	// Index 是索引存储，召回/过滤/排序共用
	Index core.IndexStore

	// Store 是通用 KV 存储（黑名单等），可为 nil
	Store core.Store
}

// NewFactory 返回注册了全部内置 Node 的工厂。
func NewFactory(deps Deps) *pipeline.NodeFactory {
	f := pipeline.NewNodeFactory()

	f.Register("recall.keyword", func(cfg map[string]any) (pipeline.Node, error) {
		return &recall.KeywordRecall{
			Store:    deps.Index,
			MaxPairs: conv.ConfigGetInt(cfg, "max_pairs", 0),
		}, nil
	})

	f.Register("recall.popular", func(cfg map[string]any) (pipeline.Node, error) {
		return &recall.Popular{
			Store: deps.Index,
			TopK:  conv.ConfigGetInt(cfg, "top_k", 0),
		}, nil
	})

	f.Register("recall.fanout", func(cfg map[string]any) (pipeline.Node, error) {
		return buildFanout(deps, cfg)
	})

	f.Register("filter", func(cfg map[string]any) (pipeline.Node, error) {
		return buildFilter(deps, cfg)
	})

	f.Register("rank.jaccard", func(cfg map[string]any) (pipeline.Node, error) {
		return &rank.JaccardNode{Store: deps.Index}, nil
	})

	f.Register("rerank.topn", func(cfg map[string]any) (pipeline.Node, error) {
		return &rerank.TopNNode{N: conv.ConfigGetInt(cfg, "n", 0)}, nil
	})

	return f
}

func buildFanout(deps Deps, cfg map[string]any) (pipeline.Node, error) {
	sourcesCfg, ok := cfg["sources"].([]any)
	if !ok {
		return nil, fmt.Errorf("fanout: sources not found or invalid")
	}

	sources := make([]recall.Source, 0, len(sourcesCfg))
	for _, sc := range sourcesCfg {
		sourceMap, ok := sc.(map[string]any)
		if !ok {
			continue
		}
		switch sourceType := conv.ConfigGet[string](sourceMap, "type", ""); sourceType {
		case "keyword":
			sources = append(sources, &recall.KeywordRecall{
				Store:    deps.Index,
				MaxPairs: conv.ConfigGetInt(sourceMap, "max_pairs", 0),
			})
		case "popular":
			sources = append(sources, &recall.Popular{
				Store: deps.Index,
				TopK:  conv.ConfigGetInt(sourceMap, "top_k", 0),
			})
		default:
			return nil, fmt.Errorf("fanout: unknown source type: %s", sourceType)
		}
	}

	fanout := &recall.Fanout{
		Sources: sources,
		Dedup:   conv.ConfigGet[bool](cfg, "dedup", true),
	}
	if sec := conv.ConfigGetInt(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt(cfg, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = n
	}
	return fanout, nil
}

func buildFilter(deps Deps, cfg map[string]any) (pipeline.Node, error) {
	filtersCfg, ok := cfg["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filter: filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersCfg))
	for _, fc := range filtersCfg {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		switch filterType := conv.ConfigGet[string](filterMap, "type", ""); filterType {
		case "watched":
			filters = append(filters, filter.NewWatchedFilter(deps.Index))

		case "blacklist":
			ids := conv.SliceAnyToString(filterMap["video_ids"])
			key := conv.ConfigGet[string](filterMap, "key", "")
			filters = append(filters, filter.NewBlacklistFilter(ids, deps.Store, key))

		case "expr":
			expr := conv.ConfigGet[string](filterMap, "expr", "")
			ef, err := filter.NewExprFilter(expr)
			if err != nil {
				return nil, fmt.Errorf("filter: %w", err)
			}
			filters = append(filters, ef)

		default:
			return nil, fmt.Errorf("filter: unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}
