package vkframe

import (
	"errors"
	"fmt"
	"sort"

	units "github.com/docker/go-units"
)

// ErrAllocatorFull is returned when no free range can hold a request.
var ErrAllocatorFull = errors.New("no free range large enough")

// Allocation is a byte range handed out by a LinearAllocator.
type Allocation struct {
	Offset uint64
	Size   uint64
}

// End is the first byte after the allocation.
func (a *Allocation) End() uint64 {
	return a.Offset + a.Size
}

func (a *Allocation) String() string {
	return fmt.Sprintf("[%d %d]", a.Offset, a.Size)
}

// LinearAllocator hands out aligned ranges of a region of Size bytes, such as
// one buffer shared by several data sets. It does no Vulkan calls itself.
// Requests take the first gap that fits.
type LinearAllocator struct {
	Size   uint64
	allocs []*Allocation
}

func alignUp(a uint64, align uint64) uint64 {
	if align <= 1 {
		return a
	}
	if m := a % align; m != 0 {
		return a - m + align
	}
	return a
}

// Allocate reserves size bytes starting at a multiple of align.
func (p *LinearAllocator) Allocate(size uint64, align uint64) (*Allocation, error) {
	if size == 0 {
		return nil, errors.New("allocation of 0 bytes")
	}

	var cursor uint64
	at := len(p.allocs)
	for i, a := range p.allocs {
		if start := alignUp(cursor, align); start+size <= a.Offset {
			at = i
			break
		}
		cursor = a.End()
	}

	start := alignUp(cursor, align)
	if at == len(p.allocs) && start+size > p.Size {
		return nil, fmt.Errorf("%s aligned to %d in %s: %w",
			units.BytesSize(float64(size)), align, units.BytesSize(float64(p.Size)), ErrAllocatorFull)
	}

	na := &Allocation{Offset: start, Size: size}
	p.allocs = append(p.allocs, nil)
	copy(p.allocs[at+1:], p.allocs[at:])
	p.allocs[at] = na

	Logger().Debug("range allocated", "offset", na.Offset, "size", na.Size, "in_use", len(p.allocs))
	return na, nil
}

// Free returns a to the allocator. Unknown allocations are ignored.
func (p *LinearAllocator) Free(fa *Allocation) {
	i := sort.Search(len(p.allocs), func(i int) bool { return p.allocs[i].Offset >= fa.Offset })
	if i < len(p.allocs) && p.allocs[i] == fa {
		p.allocs = append(p.allocs[:i], p.allocs[i+1:]...)
	}
}

// Used is the number of bytes currently allocated, padding excluded.
func (p *LinearAllocator) Used() uint64 {
	var n uint64
	for _, a := range p.allocs {
		n += a.Size
	}
	return n
}

func (p *LinearAllocator) String() string {
	return fmt.Sprintf("%v", p.allocs)
}
