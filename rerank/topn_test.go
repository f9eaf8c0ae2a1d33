package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/vidkit/core"
)

func items(ids ...string) []*core.Item {
	out := make([]*core.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, core.NewItem(id))
	}
	return out
}

func TestTopNNode_Process(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		limit   int
		in      []*core.Item
		wantLen int
	}{
		{"fixed n truncates", 2, 10, items("a", "b", "c"), 2},
		{"n zero falls back to request limit", 0, 2, items("a", "b", "c"), 2},
		{"fewer items than limit", 0, 5, items("a", "b"), 2},
		{"no limit at all keeps everything", 0, 0, items("a", "b"), 2},
		{"empty input", 0, 5, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &TopNNode{N: tt.n}
			got, err := node.Process(context.Background(), &core.RecommendContext{Limit: tt.limit}, tt.in)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

// 截断保序：保留的是排序后的前缀。
func TestTopNNode_KeepsPrefix(t *testing.T) {
	node := &TopNNode{N: 2}
	got, err := node.Process(context.Background(), nil, items("first", "second", "third"))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("got %s, %s, want first, second", got[0].ID, got[1].ID)
	}
}
