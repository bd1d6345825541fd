// Package registration holds the state and rules of the sign-up form.
//
// A Form is a plain value: the page posts every field back on each request,
// so the handler rebuilds it from the request, applies one event (an update,
// a visibility toggle or a submit) and renders the result.
package registration

import "errors"

var (
	ErrEmptyFields      = errors.New("There are empty fields! Review and try again!")
	ErrPasswordMismatch = errors.New("Passwords do not match! Try again!")
)

// PasswordEntry is one password input with its own reveal flag.
type PasswordEntry struct {
	Password string
	Reveal   bool
}

// InputType is the HTML input type the entry renders with.
func (p PasswordEntry) InputType() string {
	if p.Reveal {
		return "text"
	}
	return "password"
}

func (p PasswordEntry) ToggleLabel() string {
	if p.Reveal {
		return "Hide password"
	}
	return "Show password"
}

type Form struct {
	Email   string
	Primary PasswordEntry
	Confirm PasswordEntry
}

func (f *Form) SetEmail(email string)       { f.Email = email }
func (f *Form) SetPassword(password string) { f.Primary.Password = password }
func (f *Form) SetConfirm(password string)  { f.Confirm.Password = password }

func (f *Form) TogglePassword() { f.Primary.Reveal = !f.Primary.Reveal }
func (f *Form) ToggleConfirm()  { f.Confirm.Reveal = !f.Confirm.Reveal }

// Validate checks presence first, then that both passwords are identical.
func (f *Form) Validate() error {
	if f.Primary.Password == "" || f.Confirm.Password == "" || f.Email == "" {
		return ErrEmptyFields
	}
	if f.Primary.Password != f.Confirm.Password {
		return ErrPasswordMismatch
	}
	return nil
}
