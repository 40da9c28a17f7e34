package errors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindUsage      Kind = "usage"
	KindConfig     Kind = "config"
	KindPolicy     Kind = "policy"
	KindNotFound   Kind = "not found"
	KindCollect    Kind = "collect"
	KindAutomation Kind = "automation"
	KindInternal   Kind = "internal"
)

type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func New(kind Kind, message string, cause error) error {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func NewUsage(message string) error {
	return New(KindUsage, message, nil)
}

func NewConfig(message string, cause error) error {
	return New(KindConfig, message, cause)
}

func NewPolicy(message string) error {
	return New(KindPolicy, message, nil)
}

func NewNotFound(message string, cause error) error {
	return New(KindNotFound, message, cause)
}

func NewCollect(message string, cause error) error {
	return New(KindCollect, message, cause)
}

func NewAutomation(message string, cause error) error {
	return New(KindAutomation, message, cause)
}

func NewInternal(message string, cause error) error {
	return New(KindInternal, message, cause)
}

// KindOf reports the kind of the outermost AppError in err's chain.
// Errors that carry no kind are internal.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

func IsUsage(err error) bool {
	return Is(err, KindUsage)
}
