package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const courseBody = `{"id":3,"title":"Álgebra Lineal","professorId":9,"status":"published"}`

func courseDetailUpstream(enrollments string, enrollStatus int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/course/3":
			w.Write([]byte(courseBody))
		case "/inscriptions":
			if enrollStatus != 0 {
				w.WriteHeader(enrollStatus)
				w.Write([]byte(`{"message":"index unavailable"}`))
				return
			}
			w.Write([]byte(enrollments))
		default:
			http.NotFound(w, r)
		}
	})
}

type detailResponse struct {
	AccessTier string `json:"access_tier"`
	Course     struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	} `json:"course"`
	Enrollment *struct {
		Status string `json:"status"`
	} `json:"enrollment"`
}

func TestCourseDetailMemberFromActiveStatus(t *testing.T) {
	r := newTestRouter(t, courseDetailUpstream(
		`[{"id":1,"userId":7,"courseId":3,"status":"active","updatedAt":"2026-03-01T10:00:00Z"}]`, 0))
	token := testToken(t, "7", "Ana", "student")

	w := doRequest(r, http.MethodGet, "/api/courses/3", token, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp detailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "member", resp.AccessTier)
	require.NotNil(t, resp.Enrollment)
	assert.Equal(t, "accepted", resp.Enrollment.Status)
	assert.Equal(t, "algebra-lineal", resp.Course.Slug)
}

func TestCourseDetailOwnerProfessor(t *testing.T) {
	r := newTestRouter(t, courseDetailUpstream(`[]`, 0))
	token := testToken(t, "9", "Prof", "professor")

	w := doRequest(r, http.MethodGet, "/api/courses/3", token, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp detailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "owner", resp.AccessTier)
}

// The enrollment index failing must not break the course page: the view
// still renders, just with no access.
func TestCourseDetailDegradesWhenEnrollmentLookupFails(t *testing.T) {
	r := newTestRouter(t, courseDetailUpstream("", http.StatusInternalServerError))
	token := testToken(t, "7", "Ana", "student")

	w := doRequest(r, http.MethodGet, "/api/courses/3", token, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp detailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "none", resp.AccessTier)
	assert.Nil(t, resp.Enrollment)
}

func TestCourseDetailRejectedDuplicateWins(t *testing.T) {
	r := newTestRouter(t, courseDetailUpstream(
		`[{"id":1,"userId":7,"courseId":3,"status":"active","updatedAt":"2026-03-01T10:00:00Z"},
		  {"id":2,"userId":7,"courseId":3,"status":"rejected","updatedAt":"2026-03-02T10:00:00Z"}]`, 0))
	token := testToken(t, "7", "Ana", "student")

	w := doRequest(r, http.MethodGet, "/api/courses/3", token, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp detailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "none", resp.AccessTier)
}

func TestGetCoursesUpstreamErrorPassthrough(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"no access"}`))
	})
	r := newTestRouter(t, upstream)
	token := testToken(t, "7", "Ana", "student")

	w := doRequest(r, http.MethodGet, "/api/courses", token, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"no access"}`, w.Body.String())
}
