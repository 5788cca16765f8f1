// Package server exposes the responder over HTTP. Well-formed requests
// always get a 200 with a textual answer; everything that can go wrong
// degrades inside the responder.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inquiry/internal/responder"
)

type inquiryRequest struct {
	Question string `json:"question"`
}

// New builds the gin engine with the health and inquiry routes.
func New(resp *responder.Responder, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/inquiry", func(c *gin.Context) {
		var req inquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
			return
		}
		start := time.Now()
		answer := resp.Answer(c.Request.Context(), req.Question)
		log.Info("inquiry",
			zap.String("question", req.Question),
			zap.String("note", answer.Note),
			zap.Duration("elapsed", time.Since(start)),
		)
		c.JSON(http.StatusOK, answer)
	})

	return r
}
