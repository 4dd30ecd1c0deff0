package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/models"
	"github.com/vnkhanh/e-campus-bff/services"
)

type CourseInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=draft published"`
}

// GetCourses lists courses in canonical shape.
func GetCourses(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/course", middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	courses, err := models.ParseCourseList(res.Body)
	if err != nil {
		respondParseFailure(c, "course", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GetCourseDetail returns the course plus the caller's relationship to it:
// access tier and, for students, the current enrollment state. The dashboard
// renders its join/pending/enter button from this single response.
func GetCourseDetail(c *gin.Context) {
	id := c.Param("id")

	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/course/"+id, middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	course, err := models.ParseCourse(res.Body)
	if err != nil {
		respondParseFailure(c, "course", err)
		return
	}

	user := sessionUser(c)
	var tier services.AccessTier
	var enrollment *models.Enrollment

	enrollments, enrollErr := fetchEnrollments(c, id, user.ID)
	if enrollErr != nil {
		// Enrollment lookup failure must not hide the course itself; the
		// caller just gets no access until the index recovers.
		tier = services.ResolveAccess(user, course, nil)
	} else {
		tier = services.ResolveAccess(user, course, enrollments)
		enrollment = services.AuthoritativeEnrollment(user.ID, course.ID, enrollments)
	}

	payload := gin.H{
		"course":      course,
		"access_tier": tier,
	}
	if enrollment != nil {
		payload["enrollment"] = enrollment
	}
	c.JSON(http.StatusOK, payload)
}

// CreateCourse forwards a new course. Ownership and the professor/admin
// check are the upstream's to enforce; the proxy only validates the body.
func CreateCourse(c *gin.Context) {
	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/course", middleware.Token(c), input)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	course, err := models.ParseCourse(res.Body)
	if err != nil {
		respondParseFailure(c, "course", err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func UpdateCourse(c *gin.Context) {
	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPut, "/course/"+c.Param("id"), middleware.Token(c), input)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	course, err := models.ParseCourse(res.Body)
	if err != nil {
		respondParseFailure(c, "course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func DeleteCourse(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodDelete, "/course/"+c.Param("id"), middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}
