package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/omnibar/internal/events"
	"github.com/jonesrussell/omnibar/internal/importer"
	"github.com/jonesrussell/omnibar/internal/logger"
	"github.com/jonesrussell/omnibar/internal/suggest"
)

// invalidURLMessage is the user-presentable message for rejected domains.
// It is the only error the browser shows verbatim; the rest are rendered
// by the shell from the machine-readable code.
const invalidURLMessage = "Enter a valid domain, like example.com"

// DomainHandler serves the custom domain list endpoints.
type DomainHandler struct {
	custom    *suggest.CustomSource
	importer  *importer.Importer
	publisher *events.Publisher
	logger    logger.Logger
}

func NewDomainHandler(
	custom *suggest.CustomSource,
	imp *importer.Importer,
	publisher *events.Publisher,
	log logger.Logger,
) *DomainHandler {
	return &DomainHandler{
		custom:    custom,
		importer:  imp,
		publisher: publisher,
		logger:    log,
	}
}

type addDomainRequest struct {
	Domain string `json:"domain" binding:"required"`
	Index  *int   `json:"index"`
}

func (h *DomainHandler) List(c *gin.Context) {
	domains, err := h.custom.Suggestions(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list custom domains",
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list domains"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"domains": domains,
		"count":   len(domains),
	})
}

func (h *DomainHandler) Create(c *gin.Context) {
	var req addDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid request body",
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var err error
	if req.Index != nil {
		err = h.custom.AddAt(ctx, req.Domain, *req.Index)
	} else {
		err = h.custom.Add(ctx, req.Domain)
	}
	if err != nil {
		h.renderDomainError(c, req.Domain, err)
		return
	}

	h.publisher.PublishAsync(events.DomainEvent{
		EventType: events.DomainAdded,
		Domain:    req.Domain,
	})

	c.JSON(http.StatusCreated, gin.H{"domain": req.Domain})
}

func (h *DomainHandler) Delete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index", "details": err.Error()})
		return
	}

	if removeErr := h.custom.Remove(c.Request.Context(), index); removeErr != nil {
		if errors.Is(removeErr, suggest.ErrIndexOutOfRange) {
			c.JSON(http.StatusNotFound, gin.H{"code": "index_out_of_range"})
			return
		}
		h.logger.Error("Failed to remove custom domain",
			logger.Int("index", index),
			logger.Error(removeErr),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove domain"})
		return
	}

	h.publisher.PublishAsync(events.DomainEvent{
		EventType: events.DomainRemoved,
	})

	c.JSON(http.StatusNoContent, nil)
}

func (h *DomainHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing workbook file", "details": err.Error()})
		return
	}
	defer file.Close()

	result, err := h.importer.Import(c.Request.Context(), file)
	if err != nil {
		h.logger.Error("Domain import failed",
			logger.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read workbook", "details": err.Error()})
		return
	}

	if result.Added > 0 {
		h.publisher.PublishAsync(events.DomainEvent{
			EventType: events.DomainsImported,
			Count:     result.Added,
		})
	}

	c.JSON(http.StatusOK, result)
}

func (h *DomainHandler) renderDomainError(c *gin.Context, domain string, err error) {
	switch {
	case errors.Is(err, suggest.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_url",
			"message": invalidURLMessage,
		})
	case errors.Is(err, suggest.ErrDuplicateDomain):
		c.JSON(http.StatusConflict, gin.H{"code": "duplicate_domain"})
	case errors.Is(err, suggest.ErrIndexOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"code": "index_out_of_range"})
	default:
		h.logger.Error("Failed to add custom domain",
			logger.String("domain", domain),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add domain"})
	}
}
