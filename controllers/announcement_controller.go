package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/models"
	"github.com/vnkhanh/e-campus-bff/services"
)

type AnnouncementInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func ListAnnouncements(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/announcements?courseId="+c.Param("id"), middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	announcements, err := models.ParseAnnouncements(res.Body)
	if err != nil {
		respondParseFailure(c, "announcements", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": announcements})
}

func CreateAnnouncement(c *gin.Context) {
	var input AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body := gin.H{
		"title":    input.Title,
		"content":  input.Content,
		"courseId": c.Param("id"),
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/announcements", middleware.Token(c), body)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}
