// Package rank 对召回产生的 (来源, 候选) 对打分并排序。
package rank

import (
	"context"
	"math"
	"sort"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/pipeline"
	"github.com/rushteam/vidkit/pkg/utils"
)

// KeywordSetStore 是排序阶段的存储接口（由 index.StoreAdapter 满足）。
type KeywordSetStore interface {
	// GetVideoKeywords 获取视频的关键词计数表；排序只用 key 集合，不用计数
	GetVideoKeywords(ctx context.Context, videoID string) (map[string]int64, error)
}

// JaccardNode 是 Jaccard 相似度排序节点。
//
// 对每个 (来源 v1, 候选 v2) 对：
//   - intersection = 两个关键词集合共有的去重关键词数（纯集合成员关系，不按出现次数加权）
//   - union = 两个集合并集的大小
//   - score = round(intersection / union, 3 位小数)
//
// 并集为空的对按防御性处理直接丢弃——能被召回说明存在共享关键词，
// 正常情况下不可能出现，但不赌上游。
//
// 排序：score 降序；同分按候选视频 ID 升序、再按来源视频 ID 升序。
// 同分顺序是实现显式定义的，保证结果可复现。
type JaccardNode struct {
	Store KeywordSetStore
}

func (n *JaccardNode) Name() string        { return "rank.jaccard" }
func (n *JaccardNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *JaccardNode) Process(
	ctx context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.Store == nil || len(items) == 0 {
		return items, nil
	}

	// 同一个视频会出现在很多对里，关键词集合在本次请求内缓存
	sets := make(map[string]map[string]struct{})
	keywordSet := func(videoID string) (map[string]struct{}, error) {
		if s, ok := sets[videoID]; ok {
			return s, nil
		}
		counts, err := n.Store.GetVideoKeywords(ctx, videoID)
		if err != nil {
			return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeUnavailable, "store: "+err.Error())
		}
		s := make(map[string]struct{}, len(counts))
		for keyword := range counts {
			s[keyword] = struct{}{}
		}
		sets[videoID] = s
		return s, nil
	}

	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, core.ErrQueryTimeout
		}

		s1, err := keywordSet(it.SourceID)
		if err != nil {
			return nil, err
		}
		s2, err := keywordSet(it.ID)
		if err != nil {
			return nil, err
		}

		score, ok := Jaccard(s1, s2)
		if !ok {
			continue
		}
		it.Score = score
		it.PutLabel("rank_metric", utils.Label{Value: "jaccard", Source: "rank"})
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].SourceID < out[j].SourceID
	})
	return out, nil
}

// Jaccard 计算两个关键词集合的 Jaccard 相似度，保留三位小数。
// 两个集合都为空时返回 (0, false)。对称：Jaccard(a, b) == Jaccard(b, a)。
func Jaccard(a, b map[string]struct{}) (float64, bool) {
	intersection := 0
	union := len(b)
	for k := range a {
		if _, shared := b[k]; shared {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0, false
	}
	return math.Round(float64(intersection)/float64(union)*1000) / 1000, true
}
