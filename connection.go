package sigslot

import (
	"github.com/mvantonder/sigslot/internal"
)

// Connection is the registration token returned by Connect.
type Connection struct {
	conn *internal.Conn
}

// Disconnect tombstones the registration: the handler is skipped by future
// emissions while the ordering of the remaining handlers is preserved. An
// emission that was already in flight when Disconnect was called still
// delivers to the handler. Disconnecting twice is a no-op.
func (c *Connection) Disconnect() {
	c.conn.Remove()
}
