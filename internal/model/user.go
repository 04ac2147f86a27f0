package model

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// User is a login credential row. Passwords are stored in plaintext;
// the system predates any hashing scheme and the student credentials
// are deliberately derivable (see StudentCredentials).
type User struct {
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Role     Role   `db:"role"     json:"role"`
}

// Session is the authenticated identity passed to service calls. For
// student sessions StudentID carries the resolved student record id;
// it is empty for admins.
type Session struct {
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	StudentID string `json:"student_id,omitempty"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// JWTClaims is the subset of session state carried inside tokens.
type JWTClaims struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	StudentID string `json:"student_id,omitempty"`
}

func (c JWTClaims) Session() Session {
	return Session{
		Username:  c.Username,
		Role:      Role(c.Role),
		StudentID: c.StudentID,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
