package state

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// ids are creation-time ordered within a process: a monotonic counter plus a
// short per-process site suffix keeps them unique across restarts too.
var (
	siteID = strings.SplitN(uuid.NewString(), "-", 2)[0]
	seq    uint64
)

func nextSeq() uint64 {
	return atomic.AddUint64(&seq, 1)
}

func newElementID() string {
	return fmt.Sprintf("el-%s-%d", siteID, nextSeq())
}

func newLayerID() string {
	return fmt.Sprintf("layer-%s-%d", siteID, nextSeq())
}
