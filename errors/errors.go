package errors

import "fmt"

var (
	ErrNotFound       = fmt.Errorf("entity does not exist")
	ErrAccessDenied   = fmt.Errorf("access denied")
	ErrInvalidRequest = fmt.Errorf("invalid request")
	ErrNoReceivers    = fmt.Errorf("message has no receivers other than the sender")
	ErrEmptyList      = fmt.Errorf("list is empty")
	ErrNoSuchUser     = fmt.Errorf("there is no such user")

	ErrChatExists        = fmt.Errorf("a chat with this member set already exists")
	ErrUserAlreadyExists = fmt.Errorf("username is already taken")

	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("unable to generate token")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)
