package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/models"
	"github.com/vnkhanh/e-campus-bff/services"
)

type UpdateProfileInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// GetProfile returns the caller's canonical user record. Role changes are
// not possible through this surface; the upstream rejects them.
func GetProfile(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/users/me", middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	user, err := models.ParseUser(res.Body)
	if err != nil {
		respondParseFailure(c, "users", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPut, "/users/me", middleware.Token(c), input)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	user, err := models.ParseUser(res.Body)
	if err != nil {
		respondParseFailure(c, "users", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
