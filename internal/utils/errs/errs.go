package errs

import "errors"

var (
	ErrInvalidURL        = errors.New("invalid url")
	ErrTaskNotFound      = errors.New("task not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrMaxTasksReached   = errors.New("maximum task count exceeded")
	ErrInvalidLogin      = errors.New("invalid login credentials")
	ErrInvalidUsername   = errors.New("invalid username")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthenticated   = errors.New("unauthenticated")

	// Extraction pipeline failures, classified by the executor into task states.
	ErrVideoUnavailable = errors.New("video unavailable")
	ErrDownloadFailed   = errors.New("download failed")
)
