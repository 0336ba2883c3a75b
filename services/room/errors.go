package room

import "errors"

var (
	// ErrNotFound mirrors the repository's miss for service callers.
	ErrNotFound = errors.New("room not found")

	// ErrDuplicateRoomNumber rejects a second room with the same number.
	ErrDuplicateRoomNumber = errors.New("a room with this number already exists")
)
