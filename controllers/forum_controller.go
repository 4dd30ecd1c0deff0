package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/models"
	"github.com/vnkhanh/e-campus-bff/services"
)

type ThreadInput struct {
	Title string `json:"title" binding:"required"`
}

type PostInput struct {
	Content string `json:"content" binding:"required"`
}

func ListThreads(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/forums?courseId="+c.Param("id"), middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	threads, err := models.ParseForumThreads(res.Body)
	if err != nil {
		respondParseFailure(c, "forums", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"threads": threads})
}

func CreateThread(c *gin.Context) {
	var input ThreadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body := gin.H{"title": input.Title, "courseId": c.Param("id")}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/forums", middleware.Token(c), body)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}

func ListPosts(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/forums/"+c.Param("id")+"/posts", middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	posts, err := models.ParseForumPosts(res.Body)
	if err != nil {
		respondParseFailure(c, "forums", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func CreatePost(c *gin.Context) {
	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/forums/"+c.Param("id")+"/posts", middleware.Token(c), input)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}
