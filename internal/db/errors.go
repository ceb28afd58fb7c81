package db

import "errors"

// Domain-level database error sentinels.
var (
	// FAQ errors
	ErrFAQNotFound       = errors.New("faq not found")
	ErrDuplicateQuestion = errors.New("question already exists")

	// Student errors
	ErrStudentNotFound = errors.New("student not found")
)
