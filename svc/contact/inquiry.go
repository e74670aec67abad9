package contact

import (
	"fmt"

	"github.com/romeorayyy/beyonddevblog/pkg/sanitizer"
	"github.com/romeorayyy/beyonddevblog/pkg/validator"
)

const (
	maxNameLength    = 80
	maxSubjectLength = 200
)

// Inquiry is a contact-form submission.
type Inquiry struct {
	Name           string `json:"name" form:"name"`
	Subject        string `json:"subject" form:"subject"`
	Email          string `json:"email" form:"email"`
	InquiryDetails string `json:"inquiryDetails" form:"inquiryDetails"`
}

// Normalize trims the single-line fields and normalizes the address.
// InquiryDetails is kept exactly as submitted.
func (i Inquiry) Normalize() Inquiry {
	i.Name = sanitizer.Trim(i.Name)
	i.Subject = sanitizer.Trim(i.Subject)
	i.Email = sanitizer.NormalizeEmail(i.Email)
	return i
}

// Validate applies the form's field rules and collects every violation.
func (i Inquiry) Validate() error {
	rules := []validator.Rule{
		validator.Required("name", i.Name),
		validator.MaxLen("name", i.Name, maxNameLength),
		validator.Required("subject", i.Subject),
		validator.MaxLen("subject", i.Subject, maxSubjectLength),
		validator.Required("email", i.Email),
		validator.Required("inquiryDetails", i.InquiryDetails),
	}
	rules = append(rules, validator.When(i.Email != "", validator.ValidEmail("email", i.Email))...)
	return validator.Apply(rules...)
}

// MailSubject is the notification subject line, safe for use as a header.
func (i Inquiry) MailSubject() string {
	return fmt.Sprintf("New contact from %s: %s",
		sanitizer.PreventHeaderInjection(i.Name),
		sanitizer.PreventHeaderInjection(i.Subject),
	)
}

// Result is the JSON body of every contact response.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
