package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/omnibar/internal/logger"
	"github.com/jonesrussell/omnibar/internal/metrics"
	"github.com/jonesrussell/omnibar/internal/suggest"
)

// CompleteHandler serves inline completion lookups for the address bar.
type CompleteHandler struct {
	completer *suggest.Completer
	logger    logger.Logger
}

func NewCompleteHandler(completer *suggest.Completer, log logger.Logger) *CompleteHandler {
	return &CompleteHandler{
		completer: completer,
		logger:    log,
	}
}

// Complete handles GET /complete?q=<typed text>. The completion field is
// empty when nothing matches; the shell renders nothing in that case.
func (h *CompleteHandler) Complete(c *gin.Context) {
	text := c.Query("q")

	completion, err := h.completer.Complete(c.Request.Context(), text)
	if err != nil {
		h.logger.Error("Completion lookup failed",
			logger.String("text", text),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Completion lookup failed"})
		return
	}

	switch {
	case text == "":
		metrics.ObserveCompletion(metrics.ResultEmpty)
	case completion == "":
		metrics.ObserveCompletion(metrics.ResultMiss)
	default:
		metrics.ObserveCompletion(metrics.ResultHit)
	}

	c.JSON(http.StatusOK, gin.H{
		"input":      text,
		"completion": completion,
	})
}
