// Package dsl 基于 CEL (Common Expression Language) 提供 Item/Label 表达式求值，
// 用于配置驱动的候选过滤（filter.ExprFilter）。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.score >= 0.1
//   - 标签：label.recall_source == "keyword"
//   - 逻辑：item.score > 0.5 && label.recall_source != null
//   - 上下文：rctx.user_id == "u1"
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/vidkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("label", cel.DynType),
			cel.Variable("rctx", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Program 是编译后的表达式，可并发复用；表达式只在构造时编译一次。
type Program struct {
	expr string
	prg  cel.Program
}

// Compile 编译 CEL 表达式。空表达式合法，求值恒为 true。
func Compile(expr string) (*Program, error) {
	if expr == "" {
		return &Program{}, nil
	}

	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}

	return &Program{expr: expr, prg: prg}, nil
}

// Eval 对单个 Item 求值，返回布尔结果。
// 访问不存在的 label key 会报错，应使用 label.key != null 检查存在性。
func (p *Program) Eval(item *core.Item, rctx *core.RecommendContext) (bool, error) {
	if p.prg == nil {
		return true, nil
	}

	out, _, err := p.prg.Eval(buildInput(item, rctx))
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", p.expr, err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression %q must return boolean, got %T", p.expr, out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据。
// label.xxx 直接取 Label 的 Value，方便书写；完整结构在 item.labels 下。
func buildInput(item *core.Item, rctx *core.RecommendContext) map[string]any {
	labels := make(map[string]any, len(item.Labels))
	labelValues := make(map[string]any, len(item.Labels))
	for k, v := range item.Labels {
		labels[k] = map[string]any{"value": v.Value, "source": v.Source}
		labelValues[k] = v.Value
	}

	input := map[string]any{
		"item": map[string]any{
			"id":        item.ID,
			"source_id": item.SourceID,
			"score":     item.Score,
			"meta":      item.Meta,
			"labels":    labels,
		},
		"label": labelValues,
	}

	if rctx != nil {
		input["rctx"] = map[string]any{
			"user_id": rctx.UserID,
			"limit":   rctx.Limit,
			"scene":   rctx.Scene,
			"params":  rctx.Params,
		}
	} else {
		input["rctx"] = map[string]any{}
	}

	return input
}
