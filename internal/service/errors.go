package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses. Ownership
// failures surface as ErrNotFound on purpose, so a foreign resource is
// indistinguishable from a missing one.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrQuizHasNoQuestions = errors.New("quiz has no questions")
)
