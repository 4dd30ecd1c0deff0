package models

import (
	"encoding/json"

	"github.com/gosimple/slug"
)

type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
)

type Course struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	ProfessorID string       `json:"professor_id"`
	Status      CourseStatus `json:"status"`
}

// rawCourse covers the field spellings the upstream course resource emits.
type rawCourse struct {
	ID          upstreamID `json:"id"`
	Title       string     `json:"title"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ProfessorID upstreamID `json:"professorId"`
	OwnerID     upstreamID `json:"professor_id"`
	CreatorID   upstreamID `json:"creator_id"`
	Status      string     `json:"status"`
	Published   *bool      `json:"published"`
}

// ParseCourse adapts a single upstream course payload.
func ParseCourse(data []byte) (Course, error) {
	var raw rawCourse
	if err := json.Unmarshal(data, &raw); err != nil {
		return Course{}, err
	}
	return raw.toCourse(), nil
}

// ParseCourseList adapts an upstream course listing.
func ParseCourseList(data []byte) ([]Course, error) {
	var raws []rawCourse
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	courses := make([]Course, 0, len(raws))
	for _, raw := range raws {
		courses = append(courses, raw.toCourse())
	}
	return courses, nil
}

func (r rawCourse) toCourse() Course {
	title := firstNonEmpty(r.Title, r.Name)
	return Course{
		ID:          r.ID.String(),
		Title:       title,
		Slug:        slug.Make(title),
		Description: r.Description,
		ProfessorID: firstNonEmpty(r.ProfessorID.String(), r.OwnerID.String(), r.CreatorID.String()),
		Status:      normalizeCourseStatus(r.Status, r.Published),
	}
}

// Anything that is not explicitly published stays draft.
func normalizeCourseStatus(raw string, published *bool) CourseStatus {
	if raw == string(CoursePublished) {
		return CoursePublished
	}
	if raw == "" && published != nil && *published {
		return CoursePublished
	}
	return CourseDraft
}
