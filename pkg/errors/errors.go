package errors

import "fmt"

// Error codes
const (
	CodeBotError   = "BOT_ERROR"
	CodeAPIError   = "API_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeService    = "SERVICE_ERROR"
	CodeCommand    = "COMMAND_ERROR"
)

type BotError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *BotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BotError) Unwrap() error {
	return e.Cause
}

func NewBotError(message, code string, statusCode int, context map[string]any) *BotError {
	return &BotError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *BotError) WithCause(cause error) *BotError {
	e.Cause = cause
	return e
}

type APIError struct {
	*BotError
}

// Unwrap exposes the embedded BotError so errors.As can reach the structured
// fields through any wrapper type.
func (e *APIError) Unwrap() error { return e.BotError }

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		BotError: &BotError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

type ValidationError struct {
	*BotError
	Field string
	Value interface{}
}

func (e *ValidationError) Unwrap() error { return e.BotError }

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		BotError: &BotError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type ServiceError struct {
	*BotError
	Service   string
	Operation string
}

func (e *ServiceError) Unwrap() error { return e.BotError }

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		BotError: &BotError{
			Message:    message,
			Code:       CodeService,
			StatusCode: 500,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}

// CommandError wraps a failure raised by a command handler so the dispatcher
// can surface it to chat without losing the originating command name.
type CommandError struct {
	*BotError
	Command string
}

func (e *CommandError) Unwrap() error { return e.BotError }

func NewCommandError(message, command string, cause error) *CommandError {
	return &CommandError{
		BotError: &BotError{
			Message:    message,
			Code:       CodeCommand,
			StatusCode: 500,
			Context: map[string]any{
				"command": command,
			},
			Cause: cause,
		},
		Command: command,
	}
}
