package model

import (
	"errors"
	"strings"
)

// Classification labels a product as physically shipped goods or digital
// software/services. It gates which naming and role lexicons apply downstream.
type Classification string

const (
	ClassificationPhysical Classification = "physical"
	ClassificationDigital  Classification = "digital"
)

// ValidationError is the only failure surfaced to callers before discovery
// work begins. Everything after validation degrades instead of failing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid product profile: " + e.Field + " " + e.Reason
}

// ProductProfile describes the product whose buyers we are discovering.
// It is created once per discovery request and immutable thereafter.
type ProductProfile struct {
	ProductName    string         `json:"product_name"`
	Industry       string         `json:"industry,omitempty"`
	Description    string         `json:"description"`
	Keywords       []string       `json:"keywords,omitempty"`
	Classification Classification `json:"classification,omitempty"`
}

// Validate checks the required fields. It returns a *ValidationError so the
// caller can distinguish user error from engine failure.
func (p *ProductProfile) Validate() error {
	if strings.TrimSpace(p.ProductName) == "" {
		return &ValidationError{Field: "product_name", Reason: "is required"}
	}
	if strings.TrimSpace(p.Description) == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}
	if len(strings.Fields(p.Description)) < 3 {
		return &ValidationError{Field: "description", Reason: "must be at least a few words"}
	}
	return nil
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
