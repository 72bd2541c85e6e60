package domain

import (
	"net/mail"
	"strings"
)

const (
	MsgMissingSignupFields = "Please fill in all required fields!"
	MsgPasswordMismatch    = "Passwords do not match!"
	MsgPasswordTooShort    = "Password must be at least 6 characters long!"
	MsgInvalidEmail        = "Please enter a valid email address!"
	MsgMissingCredentials  = "Please enter your email and password!"

	MinPasswordLength = 6
)

const (
	UserTypeCustomer = "customer"
	UserTypeOwner    = "owner"
)

type SignupRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	UserType        string `json:"user_type"`
}

func (r *SignupRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)

	required := []struct{ name, value string }{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"password", r.Password},
		{"confirm_password", r.ConfirmPassword},
	}
	for _, f := range required {
		if f.value == "" {
			return Invalid(f.name, MsgMissingSignupFields)
		}
	}

	if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
		return Invalid("email", MsgInvalidEmail)
	}
	if r.Password != r.ConfirmPassword {
		return Invalid("confirm_password", MsgPasswordMismatch)
	}
	if len(r.Password) < MinPasswordLength {
		return Invalid("password", MsgPasswordTooShort)
	}

	if r.UserType != UserTypeOwner {
		r.UserType = UserTypeCustomer
	}
	return nil
}

func (r SignupRequest) DisplayName() string {
	return r.FirstName + " " + r.LastName
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return Invalid("email", MsgMissingCredentials)
	}
	if r.Password == "" {
		return Invalid("password", MsgMissingCredentials)
	}
	return nil
}

type AuthResult struct {
	UserType string `json:"user_type"`
	UserName string `json:"user_name"`
	Redirect string `json:"redirect"`
}

// RedirectFor picks the landing page after authentication.
func RedirectFor(userType string) string {
	if userType == UserTypeOwner {
		return "/owner-dashboard"
	}
	return "/"
}
