package models

import "encoding/json"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"     // quản trị hệ thống
	RoleProfessor UserRole = "professor" // giảng viên (chủ khóa học)
	RoleStudent   UserRole = "student"   // sinh viên
)

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// upstreamID tolerates identifiers arriving as JSON numbers or strings,
// which the upstream mixes freely across resources.
type upstreamID string

func (id *upstreamID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = upstreamID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = upstreamID(n.String())
	return nil
}

func (id upstreamID) String() string { return string(id) }

// rawUser accepts every field spelling the upstream has been seen to emit.
// All shape guessing for the users resource lives here.
type rawUser struct {
	ID       upstreamID `json:"id"`
	UID      upstreamID `json:"uid"`
	Name     string     `json:"name"`
	FullName string     `json:"full_name"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Mail     string     `json:"mail"`
	Role     string     `json:"role"`
	UserType string     `json:"type"`
}

// ParseUser adapts an upstream users payload into the canonical shape.
func ParseUser(data []byte) (User, error) {
	var raw rawUser
	if err := json.Unmarshal(data, &raw); err != nil {
		return User{}, err
	}
	return raw.toUser(), nil
}

func (r rawUser) toUser() User {
	return User{
		ID:    firstNonEmpty(r.ID.String(), r.UID.String()),
		Name:  firstNonEmpty(r.Name, r.FullName, r.Username),
		Email: firstNonEmpty(r.Email, r.Mail),
		Role:  NormalizeRole(firstNonEmpty(r.Role, r.UserType)),
	}
}

// NormalizeRole folds upstream role spellings into the three canonical roles.
// Unknown roles degrade to student, the least privileged tier.
func NormalizeRole(raw string) UserRole {
	switch raw {
	case "admin", "administrator":
		return RoleAdmin
	case "professor", "teacher", "lecturer":
		return RoleProfessor
	default:
		return RoleStudent
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
