package graph

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDAllocator mints master resource identifiers. Implementations must never
// return the same value twice within one builder session.
type IDAllocator interface {
	NextID() string
}

// UUIDAllocator mints random version 4 UUIDs.
type UUIDAllocator struct{}

// NextID returns a new random UUID in canonical form.
func (UUIDAllocator) NextID() string {
	return uuid.NewString()
}

// DefaultNanoidLength gives 132 random bits with the 64 character nanoid
// alphabet.
const DefaultNanoidLength = 22

// NanoidAllocator mints URL-safe nanoids.
type NanoidAllocator struct {
	Length int
}

// NextID returns a new nanoid of the configured length.
func (a NanoidAllocator) NextID() string {
	n := a.Length
	if n <= 0 {
		n = DefaultNanoidLength
	}
	return gonanoid.Must(n)
}

// Identifier formats accepted by NewAllocator.
const (
	IDFormatUUID   = "uuid"
	IDFormatNanoid = "nanoid"
)

// NewAllocator returns the allocator for the given format. An empty format
// selects UUIDs.
func NewAllocator(format string) (IDAllocator, error) {
	switch format {
	case "", IDFormatUUID:
		return UUIDAllocator{}, nil
	case IDFormatNanoid:
		return NanoidAllocator{Length: DefaultNanoidLength}, nil
	default:
		return nil, fmt.Errorf("unknown id format %q (want %q or %q)", format, IDFormatUUID, IDFormatNanoid)
	}
}
