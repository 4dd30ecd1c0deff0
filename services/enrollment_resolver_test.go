package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vnkhanh/e-campus-bff/models"
)

var (
	t1 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

func enrollment(id, userID, courseID string, status models.EnrollmentStatus, created, updated time.Time) models.Enrollment {
	return models.Enrollment{
		ID: id, UserID: userID, CourseID: courseID,
		Status: status, CreatedAt: created, UpdatedAt: updated,
	}
}

func TestResolveAccessOwner(t *testing.T) {
	course := models.Course{ID: "c1", ProfessorID: "p1"}
	professor := models.User{ID: "p1", Role: models.RoleProfessor}

	// Owner regardless of whatever enrollment rows exist.
	rows := []models.Enrollment{
		enrollment("1", "p1", "c1", models.EnrollmentRejected, t1, t1),
	}
	assert.Equal(t, TierOwner, ResolveAccess(professor, course, rows))

	// A different professor is not the owner.
	other := models.User{ID: "p2", Role: models.RoleProfessor}
	assert.Equal(t, TierNone, ResolveAccess(other, course, nil))
}

func TestResolveAccessAdminAlwaysOwner(t *testing.T) {
	course := models.Course{ID: "c1", ProfessorID: "p1"}
	admin := models.User{ID: "a1", Role: models.RoleAdmin}
	assert.Equal(t, TierOwner, ResolveAccess(admin, course, nil))
}

func TestResolveAccessByEnrollment(t *testing.T) {
	course := models.Course{ID: "c1", ProfessorID: "p1"}
	student := models.User{ID: "s1", Role: models.RoleStudent}

	cases := []struct {
		status models.EnrollmentStatus
		want   AccessTier
	}{
		{models.EnrollmentAccepted, TierMember},
		{models.EnrollmentPending, TierApplicant},
		{models.EnrollmentRejected, TierNone},
	}
	for _, tc := range cases {
		rows := []models.Enrollment{enrollment("1", "s1", "c1", tc.status, t1, t1)}
		assert.Equal(t, tc.want, ResolveAccess(student, course, rows), "status=%s", tc.status)
	}

	// No record at all.
	assert.Equal(t, TierNone, ResolveAccess(student, course, nil))

	// Records for other users or courses do not count.
	rows := []models.Enrollment{
		enrollment("1", "s2", "c1", models.EnrollmentAccepted, t1, t1),
		enrollment("2", "s1", "c9", models.EnrollmentAccepted, t1, t1),
	}
	assert.Equal(t, TierNone, ResolveAccess(student, course, rows))
}

func TestAuthoritativeEnrollmentLatestUpdatedWins(t *testing.T) {
	rows := []models.Enrollment{
		enrollment("1", "s1", "c1", models.EnrollmentAccepted, t1, t1),
		enrollment("2", "s1", "c1", models.EnrollmentPending, t1, t2),
	}
	got := AuthoritativeEnrollment("s1", "c1", rows)
	assert.NotNil(t, got)
	assert.Equal(t, "2", got.ID)

	// Order independence.
	got = AuthoritativeEnrollment("s1", "c1", []models.Enrollment{rows[1], rows[0]})
	assert.Equal(t, "2", got.ID)
}

func TestAuthoritativeEnrollmentTieBreaks(t *testing.T) {
	// Same UpdatedAt: later CreatedAt wins.
	rows := []models.Enrollment{
		enrollment("1", "s1", "c1", models.EnrollmentAccepted, t1, t2),
		enrollment("2", "s1", "c1", models.EnrollmentPending, t2, t2),
	}
	assert.Equal(t, "2", AuthoritativeEnrollment("s1", "c1", rows).ID)

	// Same UpdatedAt and CreatedAt: highest ID wins, compared numerically.
	rows = []models.Enrollment{
		enrollment("9", "s1", "c1", models.EnrollmentAccepted, t1, t1),
		enrollment("10", "s1", "c1", models.EnrollmentPending, t1, t1),
	}
	assert.Equal(t, "10", AuthoritativeEnrollment("s1", "c1", rows).ID)
}

// A stale "active" row must lose to a newer rejected duplicate: the student
// resolves to none, not member.
func TestRejectedDuplicateWinsOverStaleActive(t *testing.T) {
	course := models.Course{ID: "c1", ProfessorID: "p1"}
	student := models.User{ID: "s1", Role: models.RoleStudent}

	rows := []models.Enrollment{
		enrollment("1", "s1", "c1", models.EnrollmentStatus(NormalizeEnrollmentStatus("active")), t1, t1),
		enrollment("2", "s1", "c1", models.EnrollmentStatus(NormalizeEnrollmentStatus("rejected")), t1, t2),
	}
	assert.Equal(t, TierNone, ResolveAccess(student, course, rows))
}

func TestHasCurrentRequest(t *testing.T) {
	rows := []models.Enrollment{
		enrollment("1", "s1", "c1", models.EnrollmentPending, t1, t1),
	}
	assert.True(t, HasCurrentRequest("s1", "c1", rows))
	assert.False(t, HasCurrentRequest("s2", "c1", rows))
	assert.False(t, HasCurrentRequest("s1", "c2", rows))

	// A rejected authoritative record leaves the pair free to re-apply.
	rows = []models.Enrollment{
		enrollment("1", "s1", "c1", models.EnrollmentPending, t1, t1),
		enrollment("2", "s1", "c1", models.EnrollmentRejected, t1, t2),
	}
	assert.False(t, HasCurrentRequest("s1", "c1", rows))
}
