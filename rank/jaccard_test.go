package rank

import (
	"context"
	"testing"

	"github.com/rushteam/vidkit/core"
)

func set(keywords ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		s[k] = struct{}{}
	}
	return s
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []string
		want   float64
		wantOK bool
	}{
		{
			name:   "half overlap",
			a:      []string{"cat", "dog", "bird"},
			b:      []string{"cat", "dog", "fish"},
			want:   0.5,
			wantOK: true,
		},
		{
			name:   "identical sets",
			a:      []string{"cat", "dog"},
			b:      []string{"cat", "dog"},
			want:   1,
			wantOK: true,
		},
		{
			name:   "disjoint sets",
			a:      []string{"cat"},
			b:      []string{"dog"},
			want:   0,
			wantOK: true,
		},
		{
			name:   "small overlap",
			a:      []string{"a", "b", "c"},
			b:      []string{"a", "x", "y"},
			want:   0.2, // 交集 {a}=1，并集 {a,b,c,x,y}=5
			wantOK: true,
		},
		{
			name:   "one third rounds to three decimals",
			a:      []string{"a"},
			b:      []string{"a", "b", "c"},
			want:   0.333,
			wantOK: true,
		},
		{
			name:   "both empty",
			a:      nil,
			b:      nil,
			want:   0,
			wantOK: false,
		},
		{
			name:   "one empty",
			a:      []string{"cat"},
			b:      nil,
			want:   0,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Jaccard(set(tt.a...), set(tt.b...))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Jaccard = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
			// 对称性
			rev, revOK := Jaccard(set(tt.b...), set(tt.a...))
			if rev != got || revOK != ok {
				t.Errorf("Jaccard not symmetric: (%v, %v) vs (%v, %v)", got, ok, rev, revOK)
			}
		})
	}
}

type fakeSetStore struct {
	keywords map[string]map[string]int64
	calls    map[string]int
}

func (f *fakeSetStore) GetVideoKeywords(ctx context.Context, videoID string) (map[string]int64, error) {
	if f.calls != nil {
		f.calls[videoID]++
	}
	return f.keywords[videoID], nil
}

func counts(keywords ...string) map[string]int64 {
	m := make(map[string]int64, len(keywords))
	for _, k := range keywords {
		m[k] = 1
	}
	return m
}

func item(source, id string) *core.Item {
	it := core.NewItem(id)
	it.SourceID = source
	return it
}

func TestJaccardNode_Process(t *testing.T) {
	store := &fakeSetStore{
		keywords: map[string]map[string]int64{
			"A": counts("cat", "dog", "bird"),
			"B": counts("cat", "dog", "fish"),
			"C": counts("cat"),
		},
		calls: map[string]int{},
	}
	node := &JaccardNode{Store: store}

	items, err := node.Process(context.Background(), &core.RecommendContext{UserID: "u1"}, []*core.Item{
		item("A", "B"),
		item("A", "C"),
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	// |{cat,dog}| / |{cat,dog,bird,fish}| = 0.5
	if items[0].ID != "B" || items[0].Score != 0.5 {
		t.Errorf("items[0] = %s score %v, want B score 0.5", items[0].ID, items[0].Score)
	}
	// |{cat}| / |{cat,dog,bird}| = 0.333
	if items[1].ID != "C" || items[1].Score != 0.333 {
		t.Errorf("items[1] = %s score %v, want C score 0.333", items[1].ID, items[1].Score)
	}

	// 关键词集合按请求缓存：A 出现在两个对里也只读一次
	if store.calls["A"] != 1 {
		t.Errorf("store calls for A = %d, want 1", store.calls["A"])
	}
}

func TestJaccardNode_DeterministicOrder(t *testing.T) {
	store := &fakeSetStore{
		keywords: map[string]map[string]int64{
			"A": counts("cat"),
			"Z": counts("cat"),
			"B": counts("cat"),
			"C": counts("cat"),
		},
	}
	node := &JaccardNode{Store: store}

	// 全部同分（1.0）：按候选 ID 升序、再按来源 ID 升序
	items, err := node.Process(context.Background(), nil, []*core.Item{
		item("Z", "C"),
		item("A", "B"),
		item("Z", "B"),
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := [][2]string{{"A", "B"}, {"Z", "B"}, {"Z", "C"}}
	for i, w := range want {
		if items[i].SourceID != w[0] || items[i].ID != w[1] {
			t.Errorf("items[%d] = (%s, %s), want (%s, %s)",
				i, items[i].SourceID, items[i].ID, w[0], w[1])
		}
	}
}

// 两个集合都为空的对直接丢弃，不产生除零分数。
func TestJaccardNode_DropsEmptyUnion(t *testing.T) {
	store := &fakeSetStore{keywords: map[string]map[string]int64{}}
	node := &JaccardNode{Store: store}

	items, err := node.Process(context.Background(), nil, []*core.Item{item("A", "B")})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}
