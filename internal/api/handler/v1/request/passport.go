package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CompleteEventRequest struct {
	Code string `json:"code"`
}

func (req *CompleteEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required),
	)
}

type FeedbackRequest struct {
	Feedback string `json:"feedback"`
}

func (req *FeedbackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Feedback, validation.Required, validation.Length(1, 2000)),
	)
}

type UserStatusRequest struct {
	Active *bool `json:"active"`
}

func (req *UserStatusRequest) Validate() error {
	if req.Active == nil {
		return errors.New("active: cannot be blank.")
	}
	return nil
}

type GenerateQRRequest struct {
	EventID string `json:"eventId"`
	Data    string `json:"data"`
}

func (req *GenerateQRRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Data, validation.Length(0, 200)),
	)
}

type ValidateQRRequest struct {
	Code string `json:"code"`
}

func (req *ValidateQRRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required),
	)
}
