package ports

import "context"

type RoomLocker interface {
	// Lock blocks until the room lock is held or ctx is done.
	Lock(ctx context.Context, roomID string) (unlock func(), err error)
}
