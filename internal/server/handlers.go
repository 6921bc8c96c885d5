package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exploride/social-gateway/internal/feed"
	"github.com/exploride/social-gateway/internal/gallery"
	"github.com/exploride/social-gateway/internal/graph"
	"github.com/exploride/social-gateway/pkg/errors"
)

func (s *Server) handleInstagramMedia(c *gin.Context) {
	pageID := c.Query("page_id")
	if pageID == "" {
		pageID = s.cfg.Facebook.DefaultPageID
	}
	limit := feed.ParseLimit(c.Query("limit"), feed.DefaultMediaLimit)

	// Missing configuration is an empty feed, not an error.
	if pageID == "" || s.cfg.Facebook.PageToken == "" {
		c.JSON(http.StatusOK, gin.H{"items": []any{}})
		return
	}

	igID, err := s.graph.InstagramAccountID(c.Request.Context(), pageID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if igID == "" {
		c.JSON(http.StatusOK, gin.H{"items": []any{}})
		return
	}

	raw, err := s.graph.InstagramMedia(c.Request.Context(), igID, limit)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": feed.NormalizeMedia(raw)})
}

func (s *Server) handlePagePosts(c *gin.Context) {
	pageID := c.Query("page_id")
	if pageID == "" {
		pageID = s.cfg.Facebook.DefaultPageID
	}
	limit := feed.ParseLimit(c.Query("limit"), feed.DefaultPostLimit)

	if pageID == "" || s.cfg.Facebook.PageToken == "" {
		c.JSON(http.StatusOK, gin.H{"items": []any{}})
		return
	}

	raw, err := s.graph.PagePosts(c.Request.Context(), pageID, limit)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": feed.NormalizePosts(raw, limit)})
}

func (s *Server) handleOEmbed(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url parameter"})
		return
	}

	html, err := s.graph.OEmbed(c.Request.Context(), graph.OEmbedRequest{
		URL:        target,
		MaxWidth:   c.Query("maxwidth"),
		OmitScript: c.Query("omitscript"),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": html})
}

func (s *Server) handleGallery(c *gin.Context) {
	items := gallery.Resolve(s.manifest.Raw(), s.logger)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// respondError maps the error taxonomy onto the JSON error envelope:
// upstream failures carry the upstream message and status text, missing
// configuration surfaces its own message, everything else is opaque.
func (s *Server) respondError(c *gin.Context, err error) {
	if ue, ok := errors.AsUpstream(err); ok {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":      errors.GetMessage(err),
			"details":    ue.Message,
			"statusText": ue.StatusText,
		})
		return
	}

	if errors.IsMissingConfig(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errors.GetMessage(err)})
		return
	}

	s.logger.Error("Request failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}
