package models

import (
	"encoding/json"
	"time"
)

// EnrollmentStatus is the canonical vocabulary. Upstream synonyms are folded
// by services.NormalizeEnrollmentStatus before this type is assigned.
type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "pending"
	EnrollmentAccepted EnrollmentStatus = "accepted"
	EnrollmentRejected EnrollmentStatus = "rejected"
)

// Enrollment links a student to a course (upstream calls it an inscription).
type Enrollment struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	CourseID  string           `json:"course_id"`
	Status    EnrollmentStatus `json:"status"`
	RawStatus string           `json:"-"` // upstream spelling, kept for logs
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type rawEnrollment struct {
	ID        upstreamID `json:"id"`
	UserID    upstreamID `json:"userId"`
	StudentID upstreamID `json:"user_id"`
	CourseID  upstreamID `json:"courseId"`
	CourseID2 upstreamID `json:"course_id"`
	Status    string     `json:"status"`
	State     string     `json:"enrollment_status"`
	CreatedAt string     `json:"createdAt"`
	Created   string     `json:"created_at"`
	UpdatedAt string     `json:"updatedAt"`
	Updated   string     `json:"updated_at"`
}

// Normalizer is supplied by the caller so the models package stays free of a
// services import cycle.
type statusNormalizer func(string) string

// ParseEnrollment adapts one upstream inscription payload.
func ParseEnrollment(data []byte, normalize statusNormalizer) (Enrollment, error) {
	var raw rawEnrollment
	if err := json.Unmarshal(data, &raw); err != nil {
		return Enrollment{}, err
	}
	return raw.toEnrollment(normalize), nil
}

// ParseEnrollmentList adapts an upstream inscription listing.
func ParseEnrollmentList(data []byte, normalize statusNormalizer) ([]Enrollment, error) {
	var raws []rawEnrollment
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	out := make([]Enrollment, 0, len(raws))
	for _, raw := range raws {
		out = append(out, raw.toEnrollment(normalize))
	}
	return out, nil
}

func (r rawEnrollment) toEnrollment(normalize statusNormalizer) Enrollment {
	rawStatus := firstNonEmpty(r.Status, r.State)
	return Enrollment{
		ID:        r.ID.String(),
		UserID:    firstNonEmpty(r.UserID.String(), r.StudentID.String()),
		CourseID:  firstNonEmpty(r.CourseID.String(), r.CourseID2.String()),
		Status:    EnrollmentStatus(normalize(rawStatus)),
		RawStatus: rawStatus,
		CreatedAt: parseUpstreamTime(firstNonEmpty(r.CreatedAt, r.Created)),
		UpdatedAt: parseUpstreamTime(firstNonEmpty(r.UpdatedAt, r.Updated)),
	}
}

// The upstream emits RFC3339 with or without sub-second precision; a date
// that fails to parse collapses to the zero time, which sorts as oldest.
func parseUpstreamTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
