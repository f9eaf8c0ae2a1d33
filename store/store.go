package store

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.Store 和 core.KeyValueStore 接口。
//
// 示例：
//   var s core.KeyValueStore = store.NewMemoryStore()
//   idx := index.NewStoreAdapter(s)

import "github.com/rushteam/vidkit/core"

// 类型别名，便于只 import store 的调用方。
type Store = core.Store
type KeyValueStore = core.KeyValueStore

var (
	ErrNotFound     = core.ErrStoreNotFound
	ErrNotSupported = core.ErrStoreNotSupported
)
