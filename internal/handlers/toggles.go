package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/omnibar/internal/logger"
	"github.com/jonesrussell/omnibar/internal/settings"
	"github.com/jonesrussell/omnibar/internal/suggest"
)

// knownToggles are the flags the settings screen may read or write.
var knownToggles = map[string]bool{
	suggest.CustomDomainsToggle: true,
	suggest.TopDomainsToggle:    true,
}

// ToggleHandler serves the source participation flags.
type ToggleHandler struct {
	store  settings.Store
	logger logger.Logger
}

func NewToggleHandler(store settings.Store, log logger.Logger) *ToggleHandler {
	return &ToggleHandler{
		store:  store,
		logger: log,
	}
}

type setToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *ToggleHandler) Get(c *gin.Context) {
	name := c.Param("name")
	if !knownToggles[name] {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown toggle"})
		return
	}

	on, err := h.store.Toggle(c.Request.Context(), name)
	if err != nil {
		h.logger.Error("Failed to read toggle",
			logger.String("toggle", name),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read toggle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "enabled": on})
}

func (h *ToggleHandler) Set(c *gin.Context) {
	name := c.Param("name")
	if !knownToggles[name] {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown toggle"})
		return
	}

	var req setToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.store.SetToggle(c.Request.Context(), name, *req.Enabled); err != nil {
		h.logger.Error("Failed to write toggle",
			logger.String("toggle", name),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write toggle"})
		return
	}

	h.logger.Info("Toggle updated",
		logger.String("toggle", name),
		logger.Bool("enabled", *req.Enabled),
	)

	c.JSON(http.StatusOK, gin.H{"name": name, "enabled": *req.Enabled})
}
