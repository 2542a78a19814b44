package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the presented credentials did not match any user.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnsupportedPair indicates that no conversion factor is known for a currency pair.
var ErrUnsupportedPair = errors.New("unsupported currency pair")
