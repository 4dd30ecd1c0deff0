package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/services"
)

type AttendanceInput struct {
	Date    string             `json:"date" binding:"required"`
	Records []AttendanceRecord `json:"records" binding:"required,min=1,dive"`
}

type AttendanceRecord struct {
	UserID  string `json:"user_id" binding:"required"`
	Present bool   `json:"present"`
}

func GetAttendance(c *gin.Context) {
	path := "/attendance?courseId=" + c.Param("id")
	if date := c.Query("date"); date != "" {
		path += "&date=" + date
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, path, middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}

// RecordAttendance registers one session's attendance sheet (professor side).
func RecordAttendance(c *gin.Context) {
	var input AttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body := gin.H{
		"courseId": c.Param("id"),
		"date":     input.Date,
		"records":  input.Records,
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/attendance", middleware.Token(c), body)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}
