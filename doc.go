// Package vidkit 是一个基于内容的视频推荐工具包（Video Recommender Kit）。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Recall → Filter → Rank → ReRank）
// - 索引与查询分离: index.Builder 写入关键词索引，service.Recommender 只读查询
// - Node 可扩展: 自定义召回/过滤/排序 Node 即可插拔扩展
package vidkit

import "github.com/rushteam/vidkit/pipeline"

// 轻量 facade：便于用户直接 import "vidkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
