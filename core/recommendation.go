package core

// Recommendation 是查询面向调用方的单行结果。
// JSON 字段名与对外 API 保持一致：{id, score, originalVideoId}。
type Recommendation struct {
	// ID 是被推荐的候选视频 ID
	ID string `json:"id"`

	// Score 是 Jaccard 相似度，保留三位小数，范围 [0, 1]
	Score float64 `json:"score"`

	// OriginalVideoID 是触发推荐的已观看视频 ID（"because you watched X"）
	OriginalVideoID string `json:"originalVideoId"`
}
