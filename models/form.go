package models

import (
	"html"
	"strings"
)

// FieldError is a single validation failure, keyed by the form field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type SignUpForm struct {
	FirstName       string `form:"first_name" validate:"required,max=100"`
	LastName        string `form:"last_name" validate:"required,max=100"`
	Username        string `form:"username" validate:"required,max=100"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
	MemberPassword  string `form:"member_password"`
}

// Sanitize trims and HTML-escapes the fields that end up rendered back to a
// page. Passwords are hashed, never rendered, and are left untouched so that
// log-in compares the same bytes the user typed.
func (f *SignUpForm) Sanitize() {
	f.FirstName = html.EscapeString(strings.TrimSpace(f.FirstName))
	f.LastName = html.EscapeString(strings.TrimSpace(f.LastName))
	f.Username = html.EscapeString(strings.TrimSpace(f.Username))
	f.MemberPassword = strings.TrimSpace(f.MemberPassword)
}

type LogInForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f *LogInForm) Sanitize() {
	f.Username = html.EscapeString(strings.TrimSpace(f.Username))
}

type NewMessageForm struct {
	Title string `form:"title" validate:"required"`
	Text  string `form:"msg_text" validate:"required"`
}

func (f *NewMessageForm) Sanitize() {
	f.Title = html.EscapeString(strings.TrimSpace(f.Title))
	f.Text = html.EscapeString(strings.TrimSpace(f.Text))
}

type BecomeMemberForm struct {
	MemberPassword string `form:"member_password" validate:"required"`
}

func (f *BecomeMemberForm) Sanitize() {
	f.MemberPassword = strings.TrimSpace(f.MemberPassword)
}
