// vidkit-import 批量导入视频元数据与观看事件，构建关键词索引。
//
// 用法：
//
//	vidkit-import -videos videos.json -watched watched.json
//
// 两个文件都是 JSON 数组；任一可省略。存储配置同 vidkitd（REDIS_ADDR 等）。
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"iter"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/index"
	"github.com/rushteam/vidkit/nlp"
	"github.com/rushteam/vidkit/store"
)

func main() {
	var (
		videosPath  = flag.String("videos", "", "path to videos.json")
		watchedPath = flag.String("watched", "", "path to watched.json")
		reset       = flag.Bool("reset", false, "reset keyword counts of each video before indexing")
		workers     = flag.Int("workers", 4, "import concurrency")
	)
	flag.Parse()

	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *videosPath == "" && *watchedPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: pass -videos and/or -watched")
		flag.Usage()
		os.Exit(2)
	}

	kv, err := openStore(log)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer kv.Close()

	builder := index.NewBuilder(
		index.NewStoreAdapter(kv, index.WithAdapterLogger(log)),
		nlp.New(),
		index.WithLogger(log),
		index.WithWorkers(*workers),
	)

	ctx := context.Background()

	if *videosPath != "" {
		videos, err := decodeArray[index.VideoRecord](*videosPath)
		if err != nil {
			log.Fatal("read videos", zap.String("path", *videosPath), zap.Error(err))
		}
		if *reset {
			resetVideos(ctx, builder, videos, log)
		}
		res := builder.ImportVideos(ctx, sliceSeq(videos))
		log.Info("videos imported", zap.String("result", res.String()))
	}

	if *watchedPath != "" {
		watches, err := decodeArray[index.WatchRecord](*watchedPath)
		if err != nil {
			log.Fatal("read watches", zap.String("path", *watchedPath), zap.Error(err))
		}
		res := builder.ImportWatches(ctx, sliceSeq(watches))
		log.Info("watches imported", zap.String("result", res.String()))
	}
}

func openStore(log *zap.Logger) (core.KeyValueStore, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Warn("REDIS_ADDR not set, importing into in-memory store (data is lost on exit)")
		return store.NewMemoryStore(), nil
	}
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return store.NewRedisStore(addr, db)
}

func decodeArray[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []T
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

func sliceSeq[T any](records []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range records {
			if !yield(r) {
				return
			}
		}
	}
}

// resetVideos 在重建场景下先清掉旧计数，避免重复摄入导致计数翻倍。
func resetVideos(ctx context.Context, b *index.Builder, videos []index.VideoRecord, log *zap.Logger) {
	for _, v := range videos {
		if err := b.ResetVideoKeywords(ctx, v.ID); err != nil {
			log.Warn("reset keywords", zap.String("video_id", v.ID), zap.Error(err))
		}
	}
}
