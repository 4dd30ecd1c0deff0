package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/models"
	"github.com/vnkhanh/e-campus-bff/services"
)

type EnrollmentDecisionInput struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// RequestEnrollment creates a join request for the caller. Before the create
// is forwarded (including any retry after a timeout) the current inscriptions
// are re-checked: a non-rejected record for this pair means the request
// already exists and no second create is sent.
func RequestEnrollment(c *gin.Context) {
	courseID := c.Param("id")
	user := sessionUser(c)
	if user.ID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	enrollments, apiErr := fetchEnrollments(c, courseID, user.ID)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	if services.HasCurrentRequest(user.ID, courseID, enrollments) {
		c.JSON(http.StatusConflict, gin.H{"error": "already requested"})
		return
	}

	body := gin.H{"courseId": courseID}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/inscriptions", middleware.Token(c), body)
	if apiErr != nil {
		// The upstream saw a duplicate the pre-check missed (two tabs racing).
		if apiErr.Status == http.StatusConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "already requested"})
			return
		}
		respondError(c, apiErr)
		return
	}

	enrollment, err := models.ParseEnrollment(res.Body, services.NormalizeEnrollmentStatus)
	if err != nil {
		respondParseFailure(c, "inscriptions", err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

// ListCourseEnrollments returns the course roster (professor view), every
// status normalized.
func ListCourseEnrollments(c *gin.Context) {
	enrollments, apiErr := fetchEnrollments(c, c.Param("id"), "")
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": enrollments})
}

// MyEnrollments lists the caller's enrollments across courses.
func MyEnrollments(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/inscriptions?mine=true", middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	enrollments, err := models.ParseEnrollmentList(res.Body, services.NormalizeEnrollmentStatus)
	if err != nil {
		respondParseFailure(c, "inscriptions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": enrollments})
}

// DecideEnrollment approves or rejects a pending request (professor/admin).
// A request that is already terminal is reported back as a conflict with its
// current state instead of forwarding a second decision.
func DecideEnrollment(c *gin.Context) {
	var input EnrollmentDecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")

	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/inscriptions/"+id, middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	current, err := models.ParseEnrollment(res.Body, services.NormalizeEnrollmentStatus)
	if err != nil {
		respondParseFailure(c, "inscriptions", err)
		return
	}
	if current.Status != models.EnrollmentPending {
		c.JSON(http.StatusConflict, gin.H{
			"error":  "request already decided",
			"status": current.Status,
		})
		return
	}

	res, apiErr = services.Upstream.Forward(c.Request.Context(), http.MethodPut, "/inscriptions/"+id, middleware.Token(c), input)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	updated, err := models.ParseEnrollment(res.Body, services.NormalizeEnrollmentStatus)
	if err != nil {
		respondParseFailure(c, "inscriptions", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// WithdrawEnrollment lets a student pull back a request that is still
// pending. Accepted or rejected records are immutable from the student side.
func WithdrawEnrollment(c *gin.Context) {
	id := c.Param("id")

	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/inscriptions/"+id, middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	current, err := models.ParseEnrollment(res.Body, services.NormalizeEnrollmentStatus)
	if err != nil {
		respondParseFailure(c, "inscriptions", err)
		return
	}
	if current.Status != models.EnrollmentPending {
		c.JSON(http.StatusConflict, gin.H{"error": "only pending requests can be withdrawn"})
		return
	}

	res, apiErr = services.Upstream.Forward(c.Request.Context(), http.MethodDelete, "/inscriptions/"+id, middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	proxyRaw(c, res)
}
