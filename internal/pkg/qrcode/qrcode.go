// Package qrcode encodes and decodes the payload printed on event completion
// QR codes: YOUTHOPIA-COMPLETE-<eventId>, optionally followed by |DATA:<freeform>.
package qrcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

const (
	Prefix        = "YOUTHOPIA-COMPLETE-"
	DataSeparator = "|DATA:"
)

const (
	ReasonInvalidFormat = "invalid_format"
	ReasonUnknownEvent  = "unknown_event"
)

var ErrInvalidFormat = errors.New("invalid QR code format")

// The event id runs up to the first data separator; the data part is free text.
var codeExp = regexp2.MustCompile(`^YOUTHOPIA-COMPLETE-(?<event>(?:(?!\|DATA:).)*)(?:\|DATA:(?<data>.*))?$`, regexp2.Singleline)

type Code struct {
	EventID string
	Data    string
}

func (c Code) String() string {
	return Generate(c.EventID, c.Data)
}

// Generate builds the payload for eventID. Surrounding whitespace in data is
// dropped, and empty data omits the data section.
func Generate(eventID, data string) string {
	code := Prefix + eventID
	if data = strings.TrimSpace(data); data != "" {
		code += DataSeparator + data
	}

	return code
}

func Parse(code string) (Code, error) {
	m, err := codeExp.FindStringMatch(strings.TrimSpace(code))
	if err != nil {
		return Code{}, fmt.Errorf("codeExp.FindStringMatch -> %w", err)
	}
	if m == nil {
		return Code{}, ErrInvalidFormat
	}

	parsed := Code{EventID: m.GroupByName("event").String()}
	if g := m.GroupByName("data"); g != nil && len(g.Captures) > 0 {
		parsed.Data = g.String()
	}

	return parsed, nil
}

type Validation struct {
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
	EventID string `json:"eventId,omitempty"`
	Data    string `json:"data,omitempty"`
}

// Validate checks code against the event catalog. eventName reports the
// display name for a known event id.
func Validate(code string, eventName func(eventID string) (string, bool)) Validation {
	parsed, err := Parse(code)
	if err != nil {
		return Validation{
			Reason:  ReasonInvalidFormat,
			Message: "Invalid QR Code format.",
		}
	}

	name, ok := eventName(parsed.EventID)
	if !ok {
		return Validation{
			Reason:  ReasonUnknownEvent,
			Message: "Event ID not found in the system.",
			EventID: parsed.EventID,
			Data:    parsed.Data,
		}
	}

	return Validation{
		Valid:   true,
		Message: "Valid for: " + name,
		EventID: parsed.EventID,
		Data:    parsed.Data,
	}
}
