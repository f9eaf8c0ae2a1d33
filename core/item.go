package core

import "github.com/rushteam/vidkit/pkg/utils"

// Item 是推荐链路中的统一承载结构：候选视频、来源视频、分数、标签。
// SourceID 标记"因为你看过 X"中的 X；Score 用于排序决策；
// Labels 用于解释与策略驱动。
type Item struct {
	// ID 是候选视频 ID（不透明字符串，大小写敏感）
	ID string

	// SourceID 是产生该候选的已观看视频 ID。
	// 同一个候选视频可以与不同的 SourceID 组成多条结果，这是有意的设计
	// （每行结果对应一条 "because you watched X" 解释），不要去重。
	SourceID string

	// Score 是候选与来源视频的 Jaccard 相似度，范围 [0, 1]
	Score float64

	Meta   map[string]any
	Labels map[string]utils.Label
}

func NewItem(id string) *Item {
	return &Item{
		ID:     id,
		Meta:   make(map[string]any),
		Labels: make(map[string]utils.Label),
	}
}

// PairKey 返回 (来源, 候选) 对的唯一键，用于保证每个对只被生成与打分一次。
func (it *Item) PairKey() string {
	return it.SourceID + "\x00" + it.ID
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}
