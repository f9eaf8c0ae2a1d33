package recall

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/pipeline"
)

// Fanout 是一个 Recall Node：并发执行多个召回源，并合并结果。
// 召回源的错误分两类处理：领域错误（TIMEOUT / UNAVAILABLE）上抛，
// 让调用方区分"没数据"和"取不到数据"；其余错误只丢弃该源的结果。
type Fanout struct {
	Sources []Source

	// Dedup 为 true 时按 (SourceID, ID) 对去重，保留先到的
	Dedup bool

	// Timeout 是每个召回源的超时时间，0 表示跟随请求 context
	Timeout time.Duration

	// MaxConcurrent 最大并发数（0 表示每个源一个 goroutine）
	MaxConcurrent int
}

func (n *Fanout) Name() string        { return "recall.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Fanout) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	if len(n.Sources) == 0 {
		return nil, nil
	}

	var (
		mu  sync.Mutex
		all []*core.Item
	)

	g, gctx := errgroup.WithContext(ctx)
	if n.MaxConcurrent > 0 {
		g.SetLimit(n.MaxConcurrent)
	}

	for _, src := range n.Sources {
		s := src
		g.Go(func() error {
			recallCtx := gctx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				recallCtx, cancel = context.WithTimeout(gctx, n.Timeout)
				defer cancel()
			}

			items, err := s.Recall(recallCtx, rctx)
			if err != nil {
				if core.GetDomainError(err) != nil {
					return err
				}
				// 非领域错误：该源静默出局，不拖垮其它源
				return nil
			}

			mu.Lock()
			all = append(all, items...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !n.Dedup {
		return all, nil
	}
	seen := make(map[string]struct{}, len(all))
	out := make([]*core.Item, 0, len(all))
	for _, it := range all {
		if it == nil {
			continue
		}
		key := it.PairKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out, nil
}
