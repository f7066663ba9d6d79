package handler

import (
	"net/http"

	"github.com/BloggingApp/dailylight-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) versesLookup(c *gin.Context) {
	verse, err := h.services.Verse.Lookup(c.Request.Context(), c.Query("reference"), c.Query("translation"))
	if err != nil {
		c.JSON(statusFor(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, verse)
}

func (h *Handler) versesTranslations(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Verse.Translations())
}
