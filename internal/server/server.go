// Package server exposes the catalog snapshot over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/brogergvhs/komikat/internal/catalog"
	"github.com/brogergvhs/komikat/internal/ui"
	"github.com/gin-gonic/gin"
)

const buildHeader = "X-Catalog-Build"

type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

type Handler struct {
	Cache *catalog.SnapshotCache
	Build catalog.BuildFunc
	Stats *ui.Stats
	Log   Logger
}

func NewHandler(cache *catalog.SnapshotCache, build catalog.BuildFunc, stats *ui.Stats, log Logger) *Handler {
	if stats == nil {
		stats = &ui.Stats{}
	}

	return &Handler{Cache: cache, Build: build, Stats: stats, Log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", h.home)
	rg.POST("/home/refresh", h.refresh)
	rg.GET("/health", h.health)
}

// NewRouter returns a gin engine with recovery, request logging and the
// catalog routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if h.Log != nil {
		r.Use(requestLogger(h.Log))
	}

	h.RegisterRoutes(&r.RouterGroup)

	return r
}

func (h *Handler) home(c *gin.Context) {
	h.respond(c, h.Cache.GetOrBuild(c.Request.Context(), h.Build))
}

func (h *Handler) refresh(c *gin.Context) {
	h.respond(c, h.Cache.Refresh(c.Request.Context(), h.Build))
}

func (h *Handler) health(c *gin.Context) {
	body := gin.H{"status": "ok", "stats": h.Stats.Snapshot()}
	if cur := h.Cache.Current(); cur != nil {
		body["snapshot"] = gin.H{
			"id":       cur.BuildID,
			"built_at": cur.BuiltAt.UTC().Format(time.RFC3339),
			"failed":   cur.Failed(),
		}
	}

	c.JSON(http.StatusOK, body)
}

func (h *Handler) respond(c *gin.Context, cat *catalog.Catalog) {
	if cat.BuildID != "" {
		c.Header(buildHeader, cat.BuildID)
	}

	status := http.StatusOK
	if cat.Failed() {
		status = http.StatusInternalServerError
	}

	c.JSON(status, cat)
}

func requestLogger(log Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			log.Errorf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
			return
		}
		log.Infof("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}
