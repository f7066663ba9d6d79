package handler

import (
	"net/http"

	"github.com/BloggingApp/dailylight-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Handler struct {
	services *service.Service
	logger   *zap.Logger
}

func New(services *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(h.loggerMiddleware, gin.Recovery())
	r.Use(cors.New(corsConfig()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/sitemap.xml", h.sitemap)

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", h.postsGet)
			posts.POST("", h.postsCreate)
			posts.PUT("", h.postsEdit)

			post := posts.Group("/:postID")
			{
				post.GET("", h.postsGetByID)
				post.POST("/like", h.postsLike)
			}
		}

		v1.GET("/today", h.today)

		verses := v1.Group("/verses")
		{
			verses.GET("", h.versesLookup)
			verses.GET("/translations", h.versesTranslations)
		}
	}

	return r
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}

	origin := viper.GetString("client.origin")
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	return cfg
}

func siteBaseURL() string {
	return viper.GetString("site.base-url")
}
