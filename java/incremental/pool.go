package incremental

// CursorPool recycles cursors between and within parses. Speculative parsing
// clones the cursor for every rewind point, so without a pool a backtracking
// grammar would allocate a path per attempt.
//
// A pool is not safe for concurrent use; it belongs to one parsing session
// (a CLI invocation, a language server) and only one parse may run against it
// at a time.
type CursorPool struct {
	free    []*Cursor
	created int
}

func NewCursorPool() *CursorPool {
	return &CursorPool{}
}

// Get returns a finished cursor, reusing a released one when possible.
func (p *CursorPool) Get() *Cursor {
	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return c
	}
	p.created++
	return newCursor()
}

// Put cleans c and makes it available again. c must not be used afterwards.
func (p *CursorPool) Put(c *Cursor) {
	if c == nil {
		return
	}
	c.Clean()
	p.free = append(p.free, c)
}

// Clone returns a pooled cursor positioned where c is.
func (p *CursorPool) Clone(c *Cursor) *Cursor {
	clone := p.Get()
	clone.DeepCopyFrom(c)
	return clone
}

// Created reports how many cursors the pool has allocated.
func (p *CursorPool) Created() int {
	return p.created
}

// Idle reports how many cursors are waiting for reuse.
func (p *CursorPool) Idle() int {
	return len(p.free)
}
