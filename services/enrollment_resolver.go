package services

import (
	"strconv"

	"github.com/vnkhanh/e-campus-bff/models"
)

// AccessTier is the caller's effective relationship to a course.
type AccessTier string

const (
	TierOwner     AccessTier = "owner"     // course professor or admin
	TierMember    AccessTier = "member"    // accepted enrollment
	TierApplicant AccessTier = "applicant" // pending enrollment
	TierNone      AccessTier = "none"
)

// CanViewContent reports whether the tier unlocks gated course content.
func (t AccessTier) CanViewContent() bool {
	return t == TierOwner || t == TierMember
}

// ResolveAccess decides the access tier for a (user, course) pair.
//
// Admins and the owning professor short-circuit to owner; everyone else is
// judged by their authoritative enrollment record. Retried enroll attempts
// can leave duplicate rows for the same pair, so the record with the latest
// UpdatedAt wins (ties: latest CreatedAt, then highest ID).
func ResolveAccess(user models.User, course models.Course, enrollments []models.Enrollment) AccessTier {
	if user.Role == models.RoleAdmin {
		return TierOwner
	}
	if user.Role == models.RoleProfessor && user.ID != "" && user.ID == course.ProfessorID {
		return TierOwner
	}

	current := AuthoritativeEnrollment(user.ID, course.ID, enrollments)
	if current == nil {
		return TierNone
	}
	switch current.Status {
	case models.EnrollmentAccepted:
		return TierMember
	case models.EnrollmentPending:
		return TierApplicant
	default:
		return TierNone
	}
}

// AuthoritativeEnrollment picks the record that counts for (userID, courseID),
// or nil when the user has none. Records for other pairs are ignored.
func AuthoritativeEnrollment(userID, courseID string, enrollments []models.Enrollment) *models.Enrollment {
	var current *models.Enrollment
	for i := range enrollments {
		e := &enrollments[i]
		if e.UserID != userID || e.CourseID != courseID {
			continue
		}
		if current == nil || newerThan(e, current) {
			current = e
		}
	}
	return current
}

// HasCurrentRequest reports whether a non-rejected enrollment already exists
// for the pair. Creating another request while this holds must surface
// "already requested" instead of forwarding a duplicate create.
func HasCurrentRequest(userID, courseID string, enrollments []models.Enrollment) bool {
	current := AuthoritativeEnrollment(userID, courseID, enrollments)
	return current != nil && current.Status != models.EnrollmentRejected
}

func newerThan(a, b *models.Enrollment) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return idGreater(a.ID, b.ID)
}

// Upstream IDs are usually numeric strings; compare as numbers when both
// parse, otherwise fall back to a plain string compare.
func idGreater(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na > nb
	}
	return a > b
}
