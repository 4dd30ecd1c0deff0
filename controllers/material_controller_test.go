package controllers

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func materialsUpstream(enrollments string, contentCalls *atomic.Int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/course/3":
			w.Write([]byte(courseBody))
		case "/inscriptions":
			w.Write([]byte(enrollments))
		case "/folder":
			contentCalls.Add(1)
			w.Write([]byte(`[{"id":1,"name":"Week 1"}]`))
		case "/documents":
			contentCalls.Add(1)
			w.Write([]byte(`[{"id":10,"filename":"syllabus.pdf","folderId":1,"file_url":"https://files/syllabus.pdf"}]`))
		default:
			http.NotFound(w, r)
		}
	})
}

func TestMaterialsDeniedWithoutMembership(t *testing.T) {
	var contentCalls atomic.Int64
	r := newTestRouter(t, materialsUpstream(`[]`, &contentCalls))
	token := testToken(t, "7", "Ana", "student")

	w := doRequest(r, http.MethodGet, "/api/courses/3/materials", token, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	// Gated content is never fetched for a denied caller.
	assert.Equal(t, int64(0), contentCalls.Load())
}

func TestMaterialsMergedForMember(t *testing.T) {
	var contentCalls atomic.Int64
	r := newTestRouter(t, materialsUpstream(
		`[{"id":1,"userId":7,"courseId":3,"status":"accepted","updatedAt":"2026-03-01T10:00:00Z"}]`,
		&contentCalls))
	token := testToken(t, "7", "Ana", "student")

	w := doRequest(r, http.MethodGet, "/api/courses/3/materials", token, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Materials []struct {
			Kind     string `json:"kind"`
			Name     string `json:"name"`
			FolderID string `json:"folder_id"`
			URL      string `json:"url"`
		} `json:"materials"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Materials, 2)
	assert.Equal(t, "folder", resp.Materials[0].Kind)
	assert.Equal(t, "Week 1", resp.Materials[0].Name)
	assert.Equal(t, "document", resp.Materials[1].Kind)
	assert.Equal(t, "syllabus.pdf", resp.Materials[1].Name)
	assert.Equal(t, "1", resp.Materials[1].FolderID)
	assert.Equal(t, "https://files/syllabus.pdf", resp.Materials[1].URL)
	assert.Equal(t, int64(2), contentCalls.Load())
}
