package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/dto"
	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/scripture"
	"github.com/BloggingApp/dailylight-service/internal/service"
	"github.com/BloggingApp/dailylight-service/internal/share"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsGet(c *gin.Context) {
	dateString := strings.TrimSpace(c.Query("date"))
	if dateString == "" {
		posts, err := h.services.Post.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(statusFor(err), dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusOK, posts)
		return
	}

	date, err := model.ParseDate(dateString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidDate.Error()))
		return
	}

	post, err := h.services.Post.GetByDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errNoPostForDate.Error()))
			return
		}
		c.JSON(statusFor(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		c.JSON(statusFor(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostBody.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusFor(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, createdPost)
}

func (h *Handler) postsEdit(c *gin.Context) {
	var input dto.EditPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostBody.Error()))
		return
	}
	if strings.TrimSpace(input.ID) == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errMissingPostID.Error()))
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusFor(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, updatedPost)
}

func (h *Handler) postsLike(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	likes, err := h.services.Post.IncrementLike(c.Request.Context(), postID)
	if err != nil {
		c.JSON(statusFor(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{Likes: likes})
}

func (h *Handler) today(c *gin.Context) {
	date := time.Now()
	if dateString := strings.TrimSpace(c.Query("date")); dateString != "" {
		parsed, err := model.ParseDate(dateString)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidDate.Error()))
			return
		}
		date = parsed
	}

	post, err := h.services.Post.GetByDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errNoPostForDate.Error()))
			return
		}
		c.JSON(statusFor(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	pageURL := share.PostURL(siteBaseURL(), post.Date.Format(model.DateLayout))
	c.JSON(http.StatusOK, dto.TodayView{
		Post:       *post,
		Paragraphs: scripture.Paragraphs(post.Insight),
		Share:      share.NewLinks(post.Quote, post.Reference, pageURL),
	})
}
