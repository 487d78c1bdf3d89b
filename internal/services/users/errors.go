package users

import "errors"

// ErrUserNotFound - user not found in DB
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when the email unique constraint is violated.
var ErrEmailTaken = errors.New("email already exists")

// ErrInvalidCredentials covers both an unknown email and a wrong password
// so callers cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrDuplicate is the repository-level unique constraint signal.
var ErrDuplicate = errors.New("duplicate key")

// ErrInvalidRole is returned when a role outside the enumeration is submitted.
var ErrInvalidRole = errors.New("invalid user role")

// ErrCreateUser is returned when user creation fails.
var ErrCreateUser = errors.New("failed to create user")

// ErrCreateUsersRepo is returned when users repository creation fails.
var ErrCreateUsersRepo = errors.New("failed to create users repository")
