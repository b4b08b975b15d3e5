package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationCode classifies a ValidationError for callers
type ValidationCode string

const (
	CodeValidation        ValidationCode = "VALIDATION"
	CodeSelectionRequired ValidationCode = "SELECTION_REQUIRED"
	CodeIncomplete        ValidationCode = "INCOMPLETE"
	CodeOutOfRange        ValidationCode = "OUT_OF_RANGE"
	CodeAlreadyAssigned   ValidationCode = "ALREADY_ASSIGNED"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this voter"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a recoverable input error. It is returned to the
// caller as-is and never retried.
type ValidationError struct {
	Code    ValidationCode
	Field   string
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error: %s", e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, ", ") + ")"
	}
	return msg
}

// Is matches another ValidationError on code and field. Empty fields on the
// target act as wildcards, so &ValidationError{} matches any ValidationError.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	if t.Code != "" && e.Code != t.Code {
		return false
	}
	return t.Field == "" || e.Field == t.Field
}

// ConflictError represents a write that lost a race against another writer
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s", e.Entity, e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrPlayerNotFound = &NotFoundError{Entity: "player"}
	ErrMatchNotFound  = &NotFoundError{Entity: "match"}
)

// Already Exists Errors
var (
	ErrBallotAlreadySubmitted = &AlreadyExistsError{Entity: "ballot", Context: "for this voter in this match"}
)

// Conflict Errors
var (
	ErrMatchModified = &ConflictError{Entity: "match", Message: "was modified concurrently, reload and retry"}
)

// Validation Errors
var (
	ErrSelectionRequired = &ValidationError{Code: CodeSelectionRequired, Message: "a match and a voter must be selected"}
	ErrAlreadyAssigned   = &ValidationError{Code: CodeAlreadyAssigned, Field: "player_id", Message: "player is already assigned to a team in this match"}
	ErrInvalidTeam       = &ValidationError{Code: CodeValidation, Field: "team", Message: "team must be A or B"}
	ErrVoterNotInMatch   = &ValidationError{Code: CodeValidation, Field: "voter_id", Message: "voter did not play in this match"}
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrAdminOnly    = &AuthorizationError{Message: "admin role required"}
)

// Configuration Errors
var (
	ErrJWTSecretNotSet = &ConfigurationError{Message: "JWT_SECRET must be set when admin auth is enabled in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// HasCode checks if an error is a ValidationError with the given code
func HasCode(err error, code ValidationCode) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr) && validationErr.Code == code
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError with the generic VALIDATION code
func NewValidationError(field, message string) error {
	return &ValidationError{Code: CodeValidation, Field: field, Message: message}
}

// NewIncompleteBallotError lists the players the ballot did not score
func NewIncompleteBallotError(missing []string) error {
	return &ValidationError{
		Code:    CodeIncomplete,
		Field:   "ratings",
		Message: "every other player in the match must be rated",
		Details: missing,
	}
}

// NewOutOfRangeError lists the players whose score is outside 1..10
func NewOutOfRangeError(offending []string) error {
	return &ValidationError{
		Code:    CodeOutOfRange,
		Field:   "ratings",
		Message: "scores must be whole numbers between 1 and 10",
		Details: offending,
	}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
