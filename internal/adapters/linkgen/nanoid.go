package linkgen

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/vncsmyrnk/kairos/internal/core/ports"
)

// DefaultLength matches the share links handed out since the first release.
const DefaultLength = 10

type nanoidGenerator struct {
	length int
}

// NewNanoID returns a generator of URL-safe tokens over the nanoid
// alphabet (A-Za-z0-9_-). Collisions are not checked against storage; the
// unique index on the links column is the last line.
func NewNanoID(length int) ports.LinkGenerator {
	if length <= 0 {
		length = DefaultLength
	}
	return &nanoidGenerator{length: length}
}

func (g *nanoidGenerator) NewLink() (string, error) {
	return gonanoid.New(g.length)
}
