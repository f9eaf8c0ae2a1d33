package recall

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rushteam/vidkit/core"
)

// fakeKeywordStore 是内存实现的 KeywordStore，便于精确控制索引内容。
type fakeKeywordStore struct {
	watched  map[string][]string
	keywords map[string]map[string]int64
	inverted map[string][]string
	err      error
}

func (f *fakeKeywordStore) GetWatchedVideos(ctx context.Context, userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.watched[userID], nil
}

func (f *fakeKeywordStore) GetVideoKeywords(ctx context.Context, videoID string) (map[string]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.keywords[videoID], nil
}

func (f *fakeKeywordStore) GetKeywordVideos(ctx context.Context, keyword string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.inverted[keyword], nil
}

func newStore() *fakeKeywordStore {
	// u1 看过 A；B 与 A 共享 cat/dog 两个关键词，C 共享 cat
	return &fakeKeywordStore{
		watched: map[string][]string{
			"u1": {"A"},
		},
		keywords: map[string]map[string]int64{
			"A": {"cat": 1, "dog": 2},
			"B": {"cat": 1, "dog": 1, "fish": 1},
			"C": {"cat": 3},
		},
		inverted: map[string][]string{
			"cat":  {"A", "B", "C"},
			"dog":  {"A", "B"},
			"fish": {"B"},
		},
	}
}

func pairs(items []*core.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.SourceID+"->"+it.ID)
	}
	sort.Strings(out)
	return out
}

func TestKeywordRecall_Recall(t *testing.T) {
	r := &KeywordRecall{Store: newStore()}
	rctx := &core.RecommendContext{UserID: "u1", Limit: 10}

	items, err := r.Recall(context.Background(), rctx)
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}

	// B 通过 cat 和 dog 两条路径到达，但 (A, B) 对只生成一次；
	// 已观看的 A 自身不会成为候选。
	got := pairs(items)
	want := []string{"A->B", "A->C"}
	if len(got) != len(want) {
		t.Fatalf("pairs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pairs = %v, want %v", got, want)
		}
	}
}

func TestKeywordRecall_EmptyHistory(t *testing.T) {
	r := &KeywordRecall{Store: newStore()}
	rctx := &core.RecommendContext{UserID: "u-new", Limit: 10}

	items, err := r.Recall(context.Background(), rctx)
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %v, want empty", pairs(items))
	}
}

// 存储不可达必须上抛可重试错误，不能退化成"没有数据"。
func TestKeywordRecall_StoreUnavailable(t *testing.T) {
	store := newStore()
	store.err = errors.New("connection refused")
	r := &KeywordRecall{Store: store}

	_, err := r.Recall(context.Background(), &core.RecommendContext{UserID: "u1", Limit: 10})
	if !core.IsUnavailable(err) {
		t.Fatalf("err = %v, want UNAVAILABLE domain error", err)
	}
}

// 超出工作量预算上抛 TIMEOUT 而不是无界执行。
func TestKeywordRecall_MaxPairsBudget(t *testing.T) {
	r := &KeywordRecall{Store: newStore(), MaxPairs: 1}

	_, err := r.Recall(context.Background(), &core.RecommendContext{UserID: "u1", Limit: 10})
	if !core.IsTimeout(err) {
		t.Fatalf("err = %v, want TIMEOUT domain error", err)
	}
}

func TestKeywordRecall_CanceledContext(t *testing.T) {
	r := &KeywordRecall{Store: newStore()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Recall(ctx, &core.RecommendContext{UserID: "u1", Limit: 10})
	if !core.IsTimeout(err) {
		t.Fatalf("err = %v, want TIMEOUT domain error", err)
	}
}
