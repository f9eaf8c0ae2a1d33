package core

import "context"

// IndexStore 是关键词索引存储的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（index.StoreAdapter）实现
//   - 统一索引读写的数据访问接口，避免接口爆炸
//   - 写路径（AddWatch / ApplyKeywordCounts / ResetVideoKeywords）只被
//     index.Builder 使用；读路径被召回/排序/过滤使用，天然只读并发安全
//
// 数据模型：
//   - 关键词边 (videoID, keyword, count)：count >= 1，关键词在视频归一化
//     文本中出现至少一次时边才存在
//   - 观看边 (userID, videoID)：集合语义，重复观看不产生副作用
//   - "视频不在索引中"与"处理后关键词为空"是两个可区分的状态：
//     后者视频在已处理集合中，但关键词表为空
type IndexStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// ========== 写路径（index.Builder 专用） ==========

	// AddWatch 添加 (userID, videoID) 观看边，幂等。
	// 返回边是否为新建（重复观看返回 false）。
	AddWatch(ctx context.Context, userID, videoID string) (bool, error)

	// ApplyKeywordCounts 将一次 IndexVideo 计算出的关键词增量一并落盘，
	// 并把视频标记为已处理。counts 为空时只做标记（文本被归一化完全剥离）。
	// 每条关键词边的自增都是原子的 upsert-and-increment，不会出现写了一半的边。
	ApplyKeywordCounts(ctx context.Context, videoID string, counts map[string]int64) error

	// ResetVideoKeywords 清空视频的全部关键词边（含倒排索引里的成员关系）。
	// 重新摄入前显式调用，Builder 自身永远只做累加。
	ResetVideoKeywords(ctx context.Context, videoID string) error

	// ========== 读路径（召回/排序/过滤） ==========

	// GetWatchedVideos 获取用户观看过的视频 ID 集合；未知用户返回空集合
	GetWatchedVideos(ctx context.Context, userID string) ([]string, error)

	// HasWatched 判断用户是否看过某视频
	HasWatched(ctx context.Context, userID, videoID string) (bool, error)

	// GetVideoKeywords 获取视频的完整关键词计数表；未索引视频返回空表
	GetVideoKeywords(ctx context.Context, videoID string) (map[string]int64, error)

	// GetKeywordVideos 获取包含某关键词的视频 ID 列表（倒排索引）
	GetKeywordVideos(ctx context.Context, keyword string) ([]string, error)

	// TopWatched 按累计观看人数降序返回前 n 个视频 ID
	TopWatched(ctx context.Context, n int) ([]string, error)

	// ========== 实体存在性 ==========

	// HasVideo 判断视频是否已被处理过（与"关键词为空"区分）
	HasVideo(ctx context.Context, videoID string) (bool, error)

	// HasUser 判断用户是否存在（至少有一条观看边）
	HasUser(ctx context.Context, userID string) (bool, error)

	// HasKeyword 判断关键词是否存在（至少出现在一个视频中）
	HasKeyword(ctx context.Context, keyword string) (bool, error)
}
