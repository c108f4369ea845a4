// Package http exposes the analysis pipeline over HTTP.
package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"resistor-scan/internal/imgio"
	"resistor-scan/internal/service"
)

type Handler struct {
	analyzer  *service.Analyzer
	log       zerolog.Logger
	maxUpload int64
}

func NewHandler(analyzer *service.Analyzer, log zerolog.Logger, maxUpload int64) *Handler {
	return &Handler{
		analyzer:  analyzer,
		log:       log,
		maxUpload: maxUpload,
	}
}

// NewRouter builds a gin engine with recovery, CORS and all routes
// registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	h.Register(r)
	return r
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.health)

	api := r.Group("/api/v1")
	{
		api.POST("/analyze", h.analyze)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) analyze(c *gin.Context) {
	// Limit the request body before multipart parsing so an oversized
	// upload is rejected instead of buffered.
	if h.maxUpload > 0 {
		if c.Request.ContentLength > h.maxUpload {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse("image too large"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}

	file, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse("image too large"))
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse("no image uploaded"))
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("failed to read upload"))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("failed to read upload"))
		return
	}

	result, err := h.analyzer.AnalyzeUpload(c.Request.Context(), file.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, imgio.ErrUnsupportedFormat):
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		default:
			h.log.Error().Err(err).Str("file", file.Filename).Msg("failed to analyze image")
			c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
