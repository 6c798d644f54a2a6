package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/transport/http/middleware"
)

type RouterConfig struct {
	AllowedOrigins []string
	// StaticDir holds an optional frontend build served at /
	StaticDir string
}

// NewRouter wires the table API, the WebSocket endpoint and the optional static frontend.
func NewRouter(cfg RouterConfig, tables *TableHandler, ws gin.HandlerFunc, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, logger.Named("cors")))

	router.GET("/healthz", tables.Health)
	router.POST("/api/tables", tables.CreateTable)

	tableMW := middleware.TableMiddleware(tables.Tokens, tables.Tables)

	// Routes acting on the caller's table
	table := router.Group("/api/table")
	table.Use(tableMW)
	{
		table.GET("", tables.GetTable)
		table.DELETE("", tables.DeleteTable)
		table.POST("/moves", tables.PlayMove)
		table.POST("/undo", tables.Undo)
		table.POST("/reset", tables.Reset)
		table.POST("/reconfigure", tables.RequestReconfigure)
		table.PUT("/config", tables.Configure)
	}

	// WebSocket Route (the handler resolves the table token itself)
	if ws != nil {
		router.GET("/ws", ws)
	}

	if cfg.StaticDir != "" {
		serveStatic(router, cfg.StaticDir)
	}

	return router
}

func serveStatic(router *gin.Engine, dir string) {
	if _, err := os.Stat(dir); err != nil {
		return
	}
	index := filepath.Join(dir, "index.html")

	router.Static("/assets", filepath.Join(dir, "assets"))
	router.GET("/", func(c *gin.Context) {
		c.File(index)
	})

	// SPA fallback: serve index.html for all unmatched routes
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		// For asset requests that don't exist, return 404
		if strings.HasPrefix(c.Request.URL.Path, "/assets/") || strings.HasSuffix(c.Request.URL.Path, ".css") || strings.HasSuffix(c.Request.URL.Path, ".js") {
			c.Status(http.StatusNotFound)
			return
		}

		c.File(index)
	})
}
