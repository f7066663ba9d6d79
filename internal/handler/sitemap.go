package handler

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/share"
	"github.com/gin-gonic/gin"
)

const sitemapPostLimit = 100

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *Handler) sitemap(c *gin.Context) {
	baseURL := siteBaseURL()
	today := time.Now().UTC().Format(model.DateLayout)

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: baseURL, LastMod: today, ChangeFreq: "daily", Priority: 1},
			{Loc: baseURL + "/archive", LastMod: today, ChangeFreq: "daily", Priority: 1},
		},
	}

	// static routes are still served if the store is unavailable
	posts, err := h.services.Post.ListRecent(c.Request.Context(), sitemapPostLimit)
	if err != nil {
		h.logger.Sugar().Errorf("failed to list posts for sitemap: %s", err.Error())
	}
	for _, post := range posts {
		lastMod := post.UpdatedAt
		if lastMod.IsZero() {
			lastMod = post.Date
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        share.PostURL(baseURL, post.Date.Format(model.DateLayout)),
			LastMod:    lastMod.UTC().Format(model.DateLayout),
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	c.XML(http.StatusOK, set)
}
