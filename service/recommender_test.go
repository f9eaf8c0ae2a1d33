package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/index"
	"github.com/rushteam/vidkit/nlp"
	"github.com/rushteam/vidkit/pipeline"
	"github.com/rushteam/vidkit/store"
)

// newTestRecommender 建一个带真实索引的端到端推荐器：
// 文本 -> 归一化 -> 关键词索引 -> 召回 -> 过滤 -> Jaccard -> TopN。
func newTestRecommender(t *testing.T) (*Recommender, *index.Builder) {
	t.Helper()
	m := store.NewMemoryStore()
	t.Cleanup(func() { m.Close() })
	adapter := index.NewStoreAdapter(m)
	return NewDefaultRecommender(adapter), index.NewBuilder(adapter, nlp.New())
}

func seed(t *testing.T, b *index.Builder) {
	t.Helper()
	ctx := context.Background()
	videos := map[string]string{
		"A": "cat dog bird",
		"B": "cat dog fish",
		"C": "cat lion",
		"D": "whale shark",
	}
	for id, title := range videos {
		if err := b.IndexVideo(ctx, id, title, ""); err != nil {
			t.Fatalf("IndexVideo(%s): %v", id, err)
		}
	}
	for _, videoID := range []string{"A", "D"} {
		if err := b.RecordWatch(ctx, "u1", videoID); err != nil {
			t.Fatalf("RecordWatch(%s): %v", videoID, err)
		}
	}
}

func TestRecommender_Recommend(t *testing.T) {
	r, b := newTestRecommender(t)
	seed(t, b)

	recs, err := r.Recommend(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	// A{cat,dog,bird} vs B{cat,dog,fish}: 2/4 = 0.5
	// A{cat,dog,bird} vs C{cat,lion}:     1/4 = 0.25
	// D{whale,shark} 与谁都不共享关键词，不产生候选
	if len(recs) != 2 {
		t.Fatalf("recs = %+v, want 2 rows", recs)
	}
	if recs[0].ID != "B" || recs[0].Score != 0.5 || recs[0].OriginalVideoID != "A" {
		t.Errorf("recs[0] = %+v, want {B 0.5 A}", recs[0])
	}
	if recs[1].ID != "C" || recs[1].Score != 0.25 || recs[1].OriginalVideoID != "A" {
		t.Errorf("recs[1] = %+v, want {C 0.25 A}", recs[1])
	}

	// 分数不增且落在 [0, 1]，结果永远不含已观看视频
	for i, rec := range recs {
		if rec.Score < 0 || rec.Score > 1 {
			t.Errorf("recs[%d].Score = %v, out of [0, 1]", i, rec.Score)
		}
		if i > 0 && recs[i-1].Score < rec.Score {
			t.Errorf("scores not non-increasing: %v then %v", recs[i-1].Score, rec.Score)
		}
		if rec.ID == "A" || rec.ID == "D" {
			t.Errorf("recs[%d] = %s is already watched", i, rec.ID)
		}
	}
}

func TestRecommender_LimitTruncates(t *testing.T) {
	r, b := newTestRecommender(t)
	seed(t, b)

	recs, err := r.Recommend(context.Background(), "u1", 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "B" {
		t.Errorf("recs = %+v, want just {B}", recs)
	}
}

// 没有观看历史的用户得到空列表：这是合法结果，不是错误。
func TestRecommender_EmptyHistory(t *testing.T) {
	r, b := newTestRecommender(t)
	seed(t, b)

	recs, err := r.Recommend(context.Background(), "u-new", 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if recs == nil {
		t.Fatal("recs = nil, want empty non-nil slice")
	}
	if len(recs) != 0 {
		t.Errorf("recs = %+v, want empty", recs)
	}
}

func TestRecommender_InvalidLimit(t *testing.T) {
	r, _ := newTestRecommender(t)

	for _, limit := range []int{0, -1} {
		_, err := r.Recommend(context.Background(), "u1", limit)
		if !core.IsInvalidQuery(err) {
			t.Errorf("Recommend(limit=%d) err = %v, want INVALID_QUERY", limit, err)
		}
	}
}

type brokenStore struct {
	core.IndexStore
}

func (brokenStore) GetWatchedVideos(ctx context.Context, userID string) ([]string, error) {
	return nil, errors.New("connection refused")
}

// 存储不可达上抛可重试错误，绝不能伪装成空结果。
func TestRecommender_StoreUnavailable(t *testing.T) {
	r := NewDefaultRecommender(brokenStore{})

	_, err := r.Recommend(context.Background(), "u1", 5)
	if !core.IsUnavailable(err) {
		t.Fatalf("err = %v, want UNAVAILABLE domain error", err)
	}
}

type failingNode struct{}

func (failingNode) Name() string        { return "fail" }
func (failingNode) Kind() pipeline.Kind { return pipeline.KindRecall }
func (failingNode) Process(context.Context, *core.RecommendContext, []*core.Item) ([]*core.Item, error) {
	return nil, errors.New("boom")
}

// 链路抛出的非领域错误在门面处包装为 UNAVAILABLE，
// 调用方永远只看到带错误码的领域错误。
func TestRecommender_WrapsPlainPipelineError(t *testing.T) {
	r := NewRecommender(&pipeline.Pipeline{Nodes: []pipeline.Node{failingNode{}}})

	_, err := r.Recommend(context.Background(), "u1", 5)
	if !core.IsUnavailable(err) {
		t.Fatalf("err = %v, want UNAVAILABLE domain error", err)
	}
	domainErr := core.GetDomainError(err)
	if domainErr == nil || domainErr.Module != core.ModuleService {
		t.Errorf("domain error = %+v, want module %q", domainErr, core.ModuleService)
	}
}

func TestRecommender_DefaultLimit(t *testing.T) {
	r, _ := newTestRecommender(t)
	if got := r.DefaultLimit(); got != 5 {
		t.Errorf("DefaultLimit = %d, want 5", got)
	}
}
