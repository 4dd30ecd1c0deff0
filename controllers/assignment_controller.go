package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/services"
)

type AssignmentInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

func ListAssignments(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/submissions/assignments?courseId="+c.Param("id"), middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}

func CreateAssignment(c *gin.Context) {
	var input AssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body := gin.H{
		"title":       input.Title,
		"description": input.Description,
		"dueDate":     input.DueDate,
		"courseId":    c.Param("id"),
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/submissions/assignments", middleware.Token(c), body)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}

// SubmitAssignment forwards the student's file to the submissions resource.
func SubmitAssignment(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	fields := map[string]string{"assignmentId": c.Param("id")}
	if comment := c.PostForm("comment"); comment != "" {
		fields["comment"] = comment
	}

	res, apiErr := services.Upstream.ForwardMultipart(c.Request.Context(), "/submissions", middleware.Token(c), file, fields)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}

// ListSubmissions is the professor's view of what was handed in.
func ListSubmissions(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/submissions?assignmentId="+c.Param("id"), middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}
