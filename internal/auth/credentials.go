package auth

import "strings"

// Static credential table for the panel. The back office has exactly these
// staff logins and no self-service account flow, so they are compiled in.
// Matching is case-sensitive and exact on both email and password.
var validCredentials = map[string]string{
	"admin@agripanel.com":      "Admin@123",
	"superadmin@agripanel.com": "SuperAdmin@123",
	"admin@admin.com":          "admin123",
}

func checkCredentials(email, password string) bool {
	want, ok := validCredentials[email]
	return ok && want == password
}

// usernameFor derives the display username from the email local-part.
func usernameFor(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// roleFor derives the role from the email: an address containing "superadmin"
// gets the superadmin role, everyone else is a plain admin.
func roleFor(email string) string {
	if strings.Contains(email, "superadmin") {
		return "superadmin"
	}
	return "admin"
}
