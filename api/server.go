// Package api 提供对外的 HTTP 查询入口。
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rushteam/vidkit/core"
	"github.com/rushteam/vidkit/service"
)

// Server 把 Recommender 暴露为 HTTP API。
type Server struct {
	rec *service.Recommender
	log *zap.Logger
}

// NewServer 创建 API 服务。log 为 nil 时使用 zap.NewNop。
func NewServer(rec *service.Recommender, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{rec: rec, log: log}
}

// Router 返回挂好路由的 chi.Router。
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/recommendations/{userId}", s.handleRecommendations)
	r.Get("/healthz", s.handleHealth)

	return r
}

// handleRecommendations 处理 GET /recommendations/{userId}?limit={n}。
// limit 缺省时使用配置默认值；空结果是合法的 200。
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	limit := s.rec.DefaultLimit()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	recs, err := s.rec.Recommend(r.Context(), userID, limit)
	if err != nil {
		status, msg := statusFromError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFromError 把领域错误码映射为 HTTP 状态。
func statusFromError(err error) (int, string) {
	switch {
	case core.IsInvalidQuery(err):
		return http.StatusBadRequest, err.Error()
	case core.IsTimeout(err):
		return http.StatusGatewayTimeout, err.Error()
	case core.IsUnavailable(err):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger 按请求输出一行访问日志。
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)))
	})
}
