package filter

import (
	"context"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/pkg/dsl"
)

// ExprFilter 是表达式过滤器：用 CEL 表达式描述"保留条件"，
// 求值为 false 的候选被过滤。表达式在构造时编译一次。
//
// 示例：
//   - `item.score >= 0.1` → 去掉相似度过低的候选
//   - `label.recall_source == "keyword"` → 只保留关键词召回的候选
type ExprFilter struct {
	prg *dsl.Program
}

// NewExprFilter 编译 CEL 表达式并创建过滤器。空表达式表示全部保留。
func NewExprFilter(expr string) (*ExprFilter, error) {
	prg, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &ExprFilter{prg: prg}, nil
}

func (f *ExprFilter) Name() string { return "filter.expr" }

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}

	keep, err := f.prg.Eval(item, rctx)
	if err != nil {
		// 表达式求值失败按保留处理（FilterNode 会视为弃权）
		return false, err
	}
	return !keep, nil
}
