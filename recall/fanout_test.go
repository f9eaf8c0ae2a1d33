package recall

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rushteam/vidkit/core"
)

type stubSource struct {
	name  string
	items []*core.Item
	err   error
}

func (s *stubSource) Name() string { return s.name }
func (s *stubSource) Recall(context.Context, *core.RecommendContext) ([]*core.Item, error) {
	return s.items, s.err
}

func stubItem(source, id string) *core.Item {
	it := core.NewItem(id)
	it.SourceID = source
	return it
}

func TestFanout_MergesAndDedups(t *testing.T) {
	f := &Fanout{
		Dedup: true,
		Sources: []Source{
			&stubSource{name: "s1", items: []*core.Item{stubItem("A", "B"), stubItem("A", "C")}},
			&stubSource{name: "s2", items: []*core.Item{stubItem("A", "B"), stubItem("D", "B")}},
		},
	}

	items, err := f.Process(context.Background(), &core.RecommendContext{UserID: "u1"}, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	got := pairs(items)
	// (A, B) 两个源都产出，只保留一份；(D, B) 是不同的对，保留
	want := []string{"A->B", "A->C", "D->B"}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("pairs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pairs = %v, want %v", got, want)
		}
	}
}

// 领域错误（TIMEOUT / UNAVAILABLE）必须上抛，不能被当成该源没有数据。
func TestFanout_PropagatesDomainError(t *testing.T) {
	f := &Fanout{
		Sources: []Source{
			&stubSource{name: "ok", items: []*core.Item{stubItem("A", "B")}},
			&stubSource{name: "down", err: core.ErrStoreUnavailable},
		},
	}

	_, err := f.Process(context.Background(), nil, nil)
	if !core.IsUnavailable(err) {
		t.Fatalf("err = %v, want UNAVAILABLE domain error", err)
	}
}

// 非领域错误只让该源出局，其余源的结果照常返回。
func TestFanout_DropsFailedSource(t *testing.T) {
	f := &Fanout{
		Sources: []Source{
			&stubSource{name: "ok", items: []*core.Item{stubItem("A", "B")}},
			&stubSource{name: "flaky", err: errors.New("boom")},
		},
	}

	items, err := f.Process(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(items) != 1 || items[0].ID != "B" {
		t.Errorf("items = %v, want [A->B]", pairs(items))
	}
}

func TestPopular_Recall(t *testing.T) {
	p := &Popular{Store: topStore{"v1", "v2"}}

	items, err := p.Recall(context.Background(), nil)
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}
	if len(items) != 2 || items[0].ID != "v1" || items[1].ID != "v2" {
		t.Errorf("items = %v", pairs(items))
	}
	// 热门召回没有"来源视频"
	if items[0].SourceID != "" {
		t.Errorf("SourceID = %q, want empty", items[0].SourceID)
	}
}

type topStore []string

func (s topStore) TopWatched(_ context.Context, n int) ([]string, error) {
	if n < len(s) {
		return s[:n], nil
	}
	return s, nil
}
