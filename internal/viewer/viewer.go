// Package viewer defines the identity that keys all per-viewer UI state.
package viewer

import "strconv"

// ID identifies one connected viewer of the host application. The runtime
// never interprets it beyond equality; the host supplies it with every event.
type ID int

func (id ID) String() string {
	return strconv.Itoa(int(id))
}
