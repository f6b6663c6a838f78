package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ryodanqqe/link-shortener/internal/entity"
)

const statusError = "error"

// loginRequest represents the credentials exchanged for a bearer token.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse carries a freshly issued bearer token.
type tokenResponse struct {
	Token string `json:"token"`
}

// registerRequest represents the payload for creating a regular user.
type registerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// userResponse represents a user without its password hash.
type userResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// linkRequest represents the payload for creating a link. An empty ShortToken
// asks the server to generate one.
type linkRequest struct {
	OriginalURL string `json:"original_url" validate:"required,url"`
	ShortToken  string `json:"short_token" validate:"omitempty,max=255,excludesall=/?#"`
	IsPrivate   bool   `json:"is_private"`
}

type linkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	OriginalURL string    `json:"original_url"`
	ShortToken  string    `json:"short_token"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toLinkResponse(link *entity.Link) linkResponse {
	return linkResponse{
		ID:          link.ID,
		UserID:      link.UserID,
		OriginalURL: link.OriginalURL,
		ShortToken:  link.ShortToken,
		IsPrivate:   link.IsPrivate,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	}
}

func toLinkResponses(links []*entity.Link) []linkResponse {
	resp := make([]linkResponse, 0, len(links))
	for _, link := range links {
		resp = append(resp, toLinkResponse(link))
	}
	return resp
}

// messageResponse is a plain acknowledgement.
type messageResponse struct {
	Message string `json:"message"`
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	unauthenticatedResponse = errorResponse{
		Status:  statusError,
		Message: "Unauthenticated.",
	}

	notSuperuserResponse = errorResponse{
		Status:  statusError,
		Message: "This action is unauthorized.",
	}

	linkNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "link not found",
	}

	linkPrivateResponse = errorResponse{
		Status:  statusError,
		Message: "Unauthorized",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}

	invalidCredentialsResponse = fieldErrorResponse("email", "The provided credentials are incorrect.")
	emailTakenResponse         = fieldErrorResponse("email", "The email has already been taken.")
	passwordTooLongResponse    = fieldErrorResponse("password", "must be at most 72 bytes")
	shortTokenTakenResponse    = fieldErrorResponse("short_token", "The short token has already been taken.")
	invalidURLResponse         = fieldErrorResponse("original_url", messageForTag("url", ""))
)

// fieldErrorResponse builds a validation error response for a single field.
func fieldErrorResponse(field, message string) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  []validationError{{Field: field, Message: message}},
	}
}

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "email":
		return "invalid email"
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	case "excludesall":
		return fmt.Sprintf("must not contain any of %q", param)
	default:
		return "invalid value"
	}
}

// getValidationErrors processes validation errors and returns a list of validationError.
func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag(), e.Param()),
			})
		}
	}

	return validationErrs
}

// validationErrorResponse constructs an errorResponse for validation errors.
func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}
