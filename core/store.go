package core

import "context"

// Store 是存储的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//   - 避免循环依赖：领域层不依赖基础设施层
//
// 使用场景：
//   - 索引数据存储：关键词计数、倒排索引、观看历史
//   - 过滤数据：黑名单列表
//
// 实现：
//   - store.MemoryStore 实现此接口（测试/开发/原型）
//   - store.RedisStore 实现此接口（生产）
type Store interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// Get 读取单个 key 的值
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入单个 key-value
	Set(ctx context.Context, key string, value []byte, ttl ...int) error

	// Delete 删除单个 key
	Delete(ctx context.Context, key string) error

	// Close 关闭连接/释放资源
	Close() error
}

// KeyValueStore 是 Store 的扩展接口，提供索引所需的结构化操作。
//
// 扩展功能：
//   - 哈希表（Hash）：视频的关键词计数表，HIncrBy 即"upsert 并自增"
//   - 集合（Set）：观看边、倒排索引、已处理视频集合
//   - 有序集合（SortedSet）：观看次数排行（popular 召回源）
//
// 如果后端不支持某些操作，可返回 ErrStoreNotSupported。
type KeyValueStore interface {
	Store

	// HIncrBy 对 Hash 字段自增，字段不存在时从 0 创建。
	// 关键词计数边的 upsert-and-increment 语义全部经由此操作。
	HIncrBy(ctx context.Context, key, field string, incr int64) (int64, error)

	// HGetAll 读取整个 Hash（视频的完整关键词计数表）
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)

	// SAdd 向集合添加成员，返回新增的成员数（重复添加返回 0，天然幂等）
	SAdd(ctx context.Context, key string, members ...string) (int64, error)

	// SRem 从集合移除成员
	SRem(ctx context.Context, key string, members ...string) error

	// SMembers 获取集合全部成员
	SMembers(ctx context.Context, key string) ([]string, error)

	// SIsMember 判断成员是否在集合中
	SIsMember(ctx context.Context, key, member string) (bool, error)

	// ZIncrBy 对有序集合成员的分数自增
	ZIncrBy(ctx context.Context, key string, incr float64, member string) error

	// ZRange 按分数降序获取有序集合成员（用于 TopN）
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Store 错误定义（使用统一的 DomainError）
var (
	// ErrStoreNotFound 表示 key 不存在
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

	// ErrStoreNotSupported 表示操作不支持
	ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")
)

// IsStoreNotFound 检查错误是否为 key 不存在。
func IsStoreNotFound(err error) bool {
	if err == nil {
		return false
	}
	domainErr := GetDomainError(err)
	if domainErr != nil && domainErr.Module == ModuleStore {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}
