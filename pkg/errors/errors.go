package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - request validation and lookups
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeNoLocationFound

	// Weather provider errors - one per stage of the outbound call
	ErrorTypeMalformedProviderURL
	ErrorTypeTransportFailure
	ErrorTypeNonSuccessStatus
	ErrorTypeUnparseableBody

	// Normalization errors - payload accepted but unusable
	ErrorTypeIncompleteForecastPayload
	ErrorTypeTimestampParseFailure

	// Infrastructure/configuration errors
	ErrorTypeCache
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeNoLocationFound:
		return "NO_LOCATION_FOUND"
	case ErrorTypeMalformedProviderURL:
		return "MALFORMED_PROVIDER_URL"
	case ErrorTypeTransportFailure:
		return "TRANSPORT_FAILURE"
	case ErrorTypeNonSuccessStatus:
		return "NON_SUCCESS_STATUS"
	case ErrorTypeUnparseableBody:
		return "UNPARSEABLE_BODY"
	case ErrorTypeIncompleteForecastPayload:
		return "INCOMPLETE_FORECAST_PAYLOAD"
	case ErrorTypeTimestampParseFailure:
		return "TIMESTAMP_PARSE_FAILURE"
	case ErrorTypeCache:
		return "CACHE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain error constructors
func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

func NewNoLocationFoundError(address string) *AppError {
	return New(ErrorTypeNoLocationFound, fmt.Sprintf("no location found for %q", address))
}

// Weather provider error constructors
func NewMalformedProviderURLError(message string, cause error) *AppError {
	return Wrap(ErrorTypeMalformedProviderURL, message, cause)
}

func NewTransportFailureError(message string, cause error) *AppError {
	return Wrap(ErrorTypeTransportFailure, message, cause)
}

func NewNonSuccessStatusError(statusCode int) *AppError {
	return New(ErrorTypeNonSuccessStatus, fmt.Sprintf("weather provider returned status %d", statusCode))
}

func NewUnparseableBodyError(cause error) *AppError {
	return Wrap(ErrorTypeUnparseableBody, "weather provider response is not valid JSON", cause)
}

// Normalization error constructors
func NewIncompleteForecastPayloadError(message string) *AppError {
	return New(ErrorTypeIncompleteForecastPayload, message)
}

func NewTimestampParseFailureError(value string, cause error) *AppError {
	return Wrap(ErrorTypeTimestampParseFailure, fmt.Sprintf("unrecognized last_updated %q", value), cause)
}

// Infrastructure error constructors
func NewCacheError(message string, cause error) *AppError {
	return Wrap(ErrorTypeCache, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsType(err error, errorType ErrorType) bool {
	return err != nil && TypeOf(err) == errorType
}

func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

func IsNoLocationFoundError(err error) bool {
	return IsType(err, ErrorTypeNoLocationFound)
}

func IsCacheError(err error) bool {
	return IsType(err, ErrorTypeCache)
}

func IsConfigurationError(err error) bool {
	return IsType(err, ErrorTypeConfiguration)
}

// IsProviderError reports whether err came from the outbound weather call.
func IsProviderError(err error) bool {
	switch TypeOf(err) {
	case ErrorTypeMalformedProviderURL, ErrorTypeTransportFailure,
		ErrorTypeNonSuccessStatus, ErrorTypeUnparseableBody:
		return true
	default:
		return false
	}
}

// IsNormalizationError reports whether err came from payload normalization.
func IsNormalizationError(err error) bool {
	switch TypeOf(err) {
	case ErrorTypeIncompleteForecastPayload, ErrorTypeTimestampParseFailure:
		return true
	default:
		return false
	}
}
