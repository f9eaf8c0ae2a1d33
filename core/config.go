package core

import "time"

// RecommendConfig 是查询相关的配置接口，用于提供默认值。
type RecommendConfig interface {
	// DefaultLimit 返回未指定 limit 时的默认结果条数
	DefaultLimit() int

	// DefaultTimeout 返回单次推荐查询的时间预算
	DefaultTimeout() time.Duration

	// DefaultMaxPairs 返回单次查询允许生成的最大 (来源, 候选) 对数
	// （工作量预算，防止高热关键词导致的病态扇出）
	DefaultMaxPairs() int
}

// DefaultRecommendConfig 是默认的查询配置实现。
type DefaultRecommendConfig struct{}

func (c *DefaultRecommendConfig) DefaultLimit() int {
	return 5
}

func (c *DefaultRecommendConfig) DefaultTimeout() time.Duration {
	return 2 * time.Second
}

func (c *DefaultRecommendConfig) DefaultMaxPairs() int {
	return 100000
}
