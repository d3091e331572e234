package services

import "errors"

// Task errors
var (
	ErrTaskNotFound      = errors.New("task: not found")
	ErrTaskInvalidStatus = errors.New("task: status must be one of: assigned, inprogress, completed")
	ErrTaskInvalidInput  = errors.New("task: invalid input")
)
