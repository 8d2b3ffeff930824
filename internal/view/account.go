package view

import (
	"strings"

	"github.com/Areeb006/FAJR/internal/domain"
)

// SignedOut is shown by AuthStatus when no session is active.
const SignedOut = "Not signed in."

// AuthStatus renders the check-auth answer.
func (r *Renderer) AuthStatus(s domain.AuthStatus) string {
	if !s.Authenticated || s.User == nil {
		return r.empty(SignedOut)
	}
	return r.field("Signed in as", s.User.DisplayName()+" <"+s.User.Email+">")
}

// Profile renders the signed-in user's profile.
func (r *Renderer) Profile(u domain.User) string {
	lines := []string{
		r.styles.Title.Render(dash(u.FullName())),
		r.field("Email", dash(u.Email)),
		r.field("Phone", dash(u.Phone)),
		r.field("Gender", dash(u.Gender)),
		r.field("Date of birth", dash(u.DateOfBirth)),
		r.field("Fragrance", dash(u.PreferredFragrance)),
	}
	return strings.Join(lines, "\n")
}
