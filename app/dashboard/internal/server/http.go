package server

import (
	"embed"
	"encoding/json"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/gorilla/handlers"

	"github.com/iWorld-y/esg_radar/app/dashboard/internal/conf"
	"github.com/iWorld-y/esg_radar/app/dashboard/internal/service"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/engine"
)

//go:embed assets/*
var assets embed.FS

const (
	defaultAddr    = "0.0.0.0:5000"
	defaultTimeout = 120 * time.Second
)

func NewHTTPServer(c *conf.Server, s *service.AnalysisService, eng *engine.Engine, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
		http.Filter(CORS()),
		http.ErrorEncoder(ErrorEncoder),
		http.Address(defaultAddr),
		http.Timeout(defaultTimeout),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			} else {
				log.NewHelper(logger).Warnf("invalid http timeout %q, using %s", c.Http.Timeout, defaultTimeout)
			}
		}
	}

	srv := http.NewServer(opts...)

	// 前端同时使用 /api 前缀与根路径
	s.RegisterHTTP(srv.Route("/"))
	s.RegisterHTTP(srv.Route("/api"))

	srv.Handle("/metrics", eng.Metrics().Handler())

	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		content, err := assets.ReadFile("assets/index.html")
		if err != nil {
			nethttp.Error(w, err.Error(), nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
	})

	return srv
}

// ErrorEncoder 将错误渲染为 {"error": "<message>"}，HTTP 状态码取自 kratos 错误码
func ErrorEncoder(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	se := errors.FromError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(int(se.Code))
	_ = json.NewEncoder(w).Encode(map[string]string{"error": se.Message})
}

// CORS 允许任意来源的只读跨域请求，预检返回 204
func CORS() http.FilterFunc {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{nethttp.MethodGet, nethttp.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.OptionStatusCode(nethttp.StatusNoContent),
	)
}
