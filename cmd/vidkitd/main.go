// vidkitd 是推荐查询的 HTTP 服务进程。
//
// 环境变量（支持 .env，参考 godotenv）：
//
//	PORT          监听端口，默认 3000
//	REDIS_ADDR    Redis 地址；为空时使用内存存储（开发/测试）
//	REDIS_DB      Redis DB 编号，默认 0
//	PIPELINE_FILE 可选的 Pipeline YAML 配置；为空时使用默认链路
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rushteam/vidkit/api"
	"github.com/rushteam/vidkit/config"
	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/index"
	"github.com/rushteam/vidkit/service"
	"github.com/rushteam/vidkit/store"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	kv, err := openStore(log)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer kv.Close()

	idx := index.NewStoreAdapter(kv, index.WithAdapterLogger(log))

	rec, err := buildRecommender(idx, kv, log)
	if err != nil {
		log.Fatal("build recommender", zap.Error(err))
	}

	port := envOr("PORT", "3000")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: api.NewServer(rec, log).Router(),
	}

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("store", kv.Name()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
}

func openStore(log *zap.Logger) (core.KeyValueStore, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Info("REDIS_ADDR not set, using in-memory store")
		return store.NewMemoryStore(), nil
	}
	db, _ := strconv.Atoi(envOr("REDIS_DB", "0"))
	return store.NewRedisStore(addr, db)
}

func buildRecommender(idx core.IndexStore, kv core.KeyValueStore, log *zap.Logger) (*service.Recommender, error) {
	if path := os.Getenv("PIPELINE_FILE"); path != "" {
		return service.NewRecommenderFromConfig(path,
			config.Deps{Index: idx, Store: kv},
			service.WithLogger(log))
	}
	return service.NewDefaultRecommender(idx, service.WithLogger(log)), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
