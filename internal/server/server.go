package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// Analyzer is the slice of the pipeline the web API needs.
type Analyzer interface {
	AnalyzeURL(ctx context.Context, url string) (*model.AnalysisResult, error)
	AnalyzeText(ctx context.Context, title, text, url string) (*model.AnalysisResult, error)
}

// Server exposes the analysis pipeline over HTTP. The store may be nil, in
// which case results are not persisted.
type Server struct {
	analyzer Analyzer
	store    *Store
	router   *gin.Engine
}

// analyzeRequest accepts either a URL or raw text.
type analyzeRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// New creates the server and wires its routes.
func New(analyzer Analyzer, store *Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		analyzer: analyzer,
		store:    store,
		router:   router,
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/analyses", s.handleRecent)
		api.GET("/stats", s.handleStats)
	}

	return s
}

// Run starts serving on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var result *model.AnalysisResult
	var err error
	switch {
	case req.URL != "" && req.Text == "":
		result, err = s.analyzer.AnalyzeURL(c.Request.Context(), req.URL)
	case req.Text != "" || req.Title != "":
		result, err = s.analyzer.AnalyzeText(c.Request.Context(), req.Title, req.Text, req.URL)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide url or text"})
		return
	}
	if err != nil {
		// A caller mistake is a 400; only pipeline failures are the
		// gateway's fault.
		if errors.Is(err, model.ErrNoInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if s.store != nil {
		if _, err := s.store.Save(result); err != nil {
			// Persisting is best-effort; the analysis itself succeeded.
			c.Header("X-Store-Error", err.Error())
		}
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleRecent(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence disabled"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	records, err := s.store.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": records})
}

func (s *Server) handleStats(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence disabled"})
		return
	}

	stats, err := s.store.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
