package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/k4g4/Personal-Page/internal/core/ports"
)

// ScannerNodeID is the graft node that provides the tree scanner.
const ScannerNodeID graft.ID = "adapter.fs.scanner"

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Scanner, error) {
			return NewScanner(), nil
		},
	})
}
