package domain

import "errors"

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrUsernameTaken = errors.New("username already taken")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenRevoked = errors.New("token revoked")
var ErrForbidden = errors.New("access forbidden")
