package request

import (
	"errors"
	"regexp"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	// At least six characters, not all of them blank.
	passwordRegexPattern = `^(?=.*\S).{6,}$`
)

var (
	contactExp  = regexp.MustCompile(`^\d{10}$`)
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.Singleline)
)

var (
	errInvalidContact          = errors.New("please enter a valid 10-digit number")
	errInvalidPassword         = errors.New("password must be at least 6 characters long")
	errConfirmPasswordMismatch = errors.New("passwords do not match")
)

func validatePassword(value interface{}) error {
	s, _ := value.(string)
	ok, err := passwordExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidPassword
	}
	return nil
}

type RegisterRequest struct {
	Contact         string `json:"contact"`
	FullName        string `json:"fullName"`
	Class           string `json:"class"`
	Stream          string `json:"stream"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Photo           string `json:"photo"`
}

func (req *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Contact, validation.Required, validation.Match(contactExp).Error(errInvalidContact.Error())),
		validation.Field(&req.FullName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Class, validation.Required),
		validation.Field(&req.Stream, validation.Required),
		validation.Field(&req.Password, validation.Required, validation.By(validatePassword)),
	)
	if err != nil {
		return err
	}

	if req.Password != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}

type LoginRequest struct {
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Contact, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type ResetPasswordRequest struct {
	Contact         string `json:"contact"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (req *ResetPasswordRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Contact, validation.Required),
		validation.Field(&req.Password, validation.Required, validation.By(validatePassword)),
	)
	if err != nil {
		return err
	}

	if req.Password != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}
