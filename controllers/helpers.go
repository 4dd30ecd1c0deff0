package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/models"
	"github.com/vnkhanh/e-campus-bff/services"
)

func respondError(c *gin.Context, err *services.APIError) {
	c.JSON(err.Status, gin.H{"error": err.Message})
}

// respondParseFailure is for 2xx upstream bodies the adapters cannot read.
// The broken payload is a server-side detail; the client gets the generic
// envelope.
func respondParseFailure(c *gin.Context, resource string, err error) {
	log.Printf("adapt %s payload: %v", resource, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// proxyRaw relays an upstream success body untouched, for routes that need
// no reshaping.
func proxyRaw(c *gin.Context, res *services.Result) {
	c.Data(res.Status, "application/json; charset=utf-8", res.Body)
}

// sessionUser builds the caller's identity from the decoded cookie claims.
func sessionUser(c *gin.Context) models.User {
	return models.User{
		ID:   c.GetString("user_id"),
		Name: c.GetString("user_name"),
		Role: models.NormalizeRole(c.GetString("role")),
	}
}

// fetchEnrollments lists the upstream inscriptions for a course, already
// normalized. The query is scoped to one user when userID is non-empty.
func fetchEnrollments(c *gin.Context, courseID, userID string) ([]models.Enrollment, *services.APIError) {
	path := "/inscriptions?courseId=" + courseID
	if userID != "" {
		path += "&userId=" + userID
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, path, middleware.Token(c), nil)
	if apiErr != nil {
		return nil, apiErr
	}
	enrollments, err := models.ParseEnrollmentList(res.Body, services.NormalizeEnrollmentStatus)
	if err != nil {
		log.Printf("adapt inscriptions payload: %v", err)
		return nil, &services.APIError{Status: http.StatusInternalServerError, Message: "Internal server error"}
	}
	return enrollments, nil
}

// resolveTier computes the caller's access tier for a course. Any lookup
// failure degrades to none: gated content denies by default instead of
// turning an upstream availability fault into an exposure.
func resolveTier(c *gin.Context, courseID string) services.AccessTier {
	user := sessionUser(c)

	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/course/"+courseID, middleware.Token(c), nil)
	if apiErr != nil {
		return services.TierNone
	}
	course, err := models.ParseCourse(res.Body)
	if err != nil {
		log.Printf("adapt course payload: %v", err)
		return services.TierNone
	}

	enrollments, apiErr := fetchEnrollments(c, courseID, user.ID)
	if apiErr != nil {
		enrollments = nil
	}
	return services.ResolveAccess(user, course, enrollments)
}
