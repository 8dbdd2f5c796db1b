package utils

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeMissingURL          ErrorCode = "MISSING_URL"
	ErrorCodeInvalidURL          ErrorCode = "INVALID_URL"
	ErrorCodeVideoUnavailable    ErrorCode = "VIDEO_UNAVAILABLE"
	ErrorCodePrivateVideo        ErrorCode = "PRIVATE_VIDEO"
	ErrorCodeUnsupportedPlatform ErrorCode = "UNSUPPORTED_PLATFORM"
	ErrorCodeExtractionError     ErrorCode = "EXTRACTION_ERROR"
	ErrorCodeUnexpectedError     ErrorCode = "UNEXPECTED_ERROR"
	ErrorCodeNotFound            ErrorCode = "NOT_FOUND"
	ErrorCodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Common error constructors
func NewMissingURLError() *AppError {
	return NewError(
		ErrorCodeMissingURL,
		"please provide a video URL",
		http.StatusBadRequest,
	)
}

func NewInvalidURLError(message string) *AppError {
	return NewError(ErrorCodeInvalidURL, message, http.StatusBadRequest)
}

func NewVideoUnavailableError() *AppError {
	return NewError(
		ErrorCodeVideoUnavailable,
		"the video is unavailable or protected",
		http.StatusBadRequest,
	)
}

func NewPrivateVideoError() *AppError {
	return NewError(
		ErrorCodePrivateVideo,
		"the video is private and cannot be accessed",
		http.StatusBadRequest,
	)
}

func NewUnsupportedPlatformError() *AppError {
	return NewError(
		ErrorCodeUnsupportedPlatform,
		"the platform is not currently supported",
		http.StatusBadRequest,
	)
}

func NewExtractionFailedError(detail string) *AppError {
	return NewError(
		ErrorCodeExtractionError,
		fmt.Sprintf("failed to analyze the video: %s", detail),
		http.StatusBadRequest,
	)
}

func NewUnexpectedError() *AppError {
	return NewError(
		ErrorCodeUnexpectedError,
		"an unexpected error occurred, please try again",
		http.StatusBadRequest,
	)
}

func NewNotFoundError() *AppError {
	return NewError(
		ErrorCodeNotFound,
		"endpoint not found",
		http.StatusNotFound,
	)
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"internal server error",
		http.StatusInternalServerError,
	)
}
