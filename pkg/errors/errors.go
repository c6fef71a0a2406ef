// Package errors provides the coded error type used across chatml.
//
// Every failure that leaves a package is a *ChatmlError carrying a stable
// ErrorCode, so callers and tests can branch on the code instead of
// matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Conversion errors
	ErrTokenize         ErrorCode = "TOKENIZE"
	ErrUnknownAction    ErrorCode = "UNKNOWN_ACTION"
	ErrMissingFirstLine ErrorCode = "MISSING_FIRST_LINE"
	ErrDepthExceeded    ErrorCode = "DEPTH_EXCEEDED"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateParse    ErrorCode = "TEMPLATE_PARSE"
	ErrTemplateExecute  ErrorCode = "TEMPLATE_EXECUTE"
	ErrTemplateData     ErrorCode = "TEMPLATE_DATA"

	// Output errors
	ErrUnknownFormat ErrorCode = "UNKNOWN_FORMAT"
	ErrRender        ErrorCode = "RENDER"
)

// Category groups codes by the layer that raised them.
type Category string

// Error categories
const (
	CategoryGeneral    Category = "general"
	CategoryConfig     Category = "config"
	CategoryConversion Category = "conversion"
	CategoryTemplate   Category = "template"
	CategoryOutput     Category = "output"
)

var categories = map[ErrorCode]Category{
	ErrConfigLoad:       CategoryConfig,
	ErrConfigParse:      CategoryConfig,
	ErrTokenize:         CategoryConversion,
	ErrUnknownAction:    CategoryConversion,
	ErrMissingFirstLine: CategoryConversion,
	ErrDepthExceeded:    CategoryConversion,
	ErrTemplateNotFound: CategoryTemplate,
	ErrTemplateParse:    CategoryTemplate,
	ErrTemplateExecute:  CategoryTemplate,
	ErrTemplateData:     CategoryTemplate,
	ErrUnknownFormat:    CategoryOutput,
	ErrRender:           CategoryOutput,
}

// Category returns the layer a code belongs to.
func (c ErrorCode) Category() Category {
	if cat, ok := categories[c]; ok {
		return cat
	}
	return CategoryGeneral
}

// ChatmlError represents a structured error with code and details
type ChatmlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ChatmlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ChatmlError) Unwrap() error {
	return e.Wrapped
}

// Is matches any ChatmlError with the same code
func (e *ChatmlError) Is(target error) bool {
	var targetErr *ChatmlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func newError(code ErrorCode, message string, wrapped error) *ChatmlError {
	return &ChatmlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// New creates a new ChatmlError with the given code and message
func New(code ErrorCode, message string) *ChatmlError {
	return newError(code, message, nil)
}

// Newf creates a new ChatmlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ChatmlError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap wraps err; a nil err yields nil
func Wrap(err error, code ErrorCode, message string) *ChatmlError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf wraps err with a formatted message; a nil err yields nil
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ChatmlError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// WithDetail adds a detail to the error
func (e *ChatmlError) WithDetail(key string, value interface{}) *ChatmlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ChatmlError) WithDetails(details map[string]interface{}) *ChatmlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

func asChatml(err error) (*ChatmlError, bool) {
	var chatmlErr *ChatmlError
	ok := errors.As(err, &chatmlErr)
	return chatmlErr, ok
}

// IsErrorCode reports whether the outermost ChatmlError in err's chain
// carries code.
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := asChatml(err)
	return ok && e.Code == code
}

// GetErrorCode returns the outermost code in err's chain, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	if e, ok := asChatml(err); ok {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the outermost details in err's chain, or nil.
func GetErrorDetails(err error) map[string]interface{} {
	if e, ok := asChatml(err); ok {
		return e.Details
	}
	return nil
}

// Exit codes returned by the chatml command
const (
	ExitFailure = 1
	ExitInput   = 2
	ExitConfig  = 3
)

// ExitCode maps an error to a process exit status: 0 for nil, ExitConfig
// for configuration problems, ExitInput for markup, template and format
// errors the user can fix in their input, ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	code := GetErrorCode(err)
	switch code.Category() {
	case CategoryConfig:
		return ExitConfig
	case CategoryConversion, CategoryTemplate, CategoryOutput:
		return ExitInput
	}
	if code == ErrInvalidInput {
		return ExitInput
	}
	return ExitFailure
}
