package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/models"
	"github.com/vnkhanh/e-campus-bff/services"
)

// GetMaterials merges the course's folders and documents into one listing.
// Content is gated: only owners and members get it, and a failed tier lookup
// denies rather than erroring the whole page.
func GetMaterials(c *gin.Context) {
	courseID := c.Param("id")

	if tier := resolveTier(c, courseID); !tier.CanViewContent() {
		c.JSON(http.StatusForbidden, gin.H{"error": "course content requires an accepted enrollment"})
		return
	}

	token := middleware.Token(c)
	folderRes, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/folder?courseId="+courseID, token, nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	docRes, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/documents?courseId="+courseID, token, nil)
	if apiErr != nil {
		// The folder call already succeeded; this is the partial-failure
		// case and it surfaces as-is, no rollback exists to attempt.
		respondError(c, apiErr)
		return
	}

	materials, err := models.ParseMaterials(folderRes.Body, docRes.Body)
	if err != nil {
		respondParseFailure(c, "materials", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"materials": materials})
}

// UploadDocument passes a file straight through to the upstream documents
// resource. Nothing is stored locally.
func UploadDocument(c *gin.Context) {
	courseID := c.Param("id")

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	fields := map[string]string{"courseId": courseID}
	if folderID := c.PostForm("folderId"); folderID != "" {
		fields["folderId"] = folderID
	}

	res, apiErr := services.Upstream.ForwardMultipart(c.Request.Context(), "/documents", middleware.Token(c), file, fields)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}

// CreateFolder adds a folder to the course content tree (owner side).
func CreateFolder(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body := gin.H{"name": input.Name, "courseId": c.Param("id")}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/folder", middleware.Token(c), body)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}
