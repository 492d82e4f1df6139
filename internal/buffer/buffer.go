// Package buffer implements the ring-style input buffer that feeds the
// row state machine: a growable byte slice tracked by bot/top cursors,
// refilled from a caller-supplied FeedFunc and compacted or grown as
// needed, with EOF-newline synthesis so the row machine never has to
// special-case a missing trailing terminator.
package buffer

import (
	"context"
	"errors"
	"io"
)

// ErrRowTooLarge is returned when a single row would need more buffer
// space than the configured maximum, e.g. an unterminated quoted field
// spanning gigabytes of input.
var ErrRowTooLarge = errors.New("streamcsv: row exceeds configured maximum buffer size")

// ErrOutOfMemory is returned when growing the input buffer panics, e.g.
// a pathologically large MaxBufSize that the runtime cannot satisfy. Go
// has no realloc-style error return the way the reference C allocator
// does, so this is surfaced by recovering the allocation panic instead.
var ErrOutOfMemory = errors.New("streamcsv: out of memory growing input buffer")

// FeedFunc supplies more input bytes into buf, returning the number of
// bytes written and, at end of input, io.EOF (optionally alongside a
// final non-zero n, matching io.Reader's own contract).
type FeedFunc func(ctx context.Context, buf []byte) (int, error)

// Buffer is the growable staging area between FeedFunc and the row
// machine. Bot and Top delimit the currently buffered, not-yet-consumed
// byte range within Data; callers advance Bot as rows are parsed out.
type Buffer struct {
	Data       []byte
	Bot, Top   int
	max        int
	maxAllowed int
	eof        bool
}

// New allocates a Buffer with the given initial and maximum sizes,
// clamping nonsensical values to sane defaults.
func New(initSize, maxSize int) *Buffer {
	if maxSize <= 0 {
		maxSize = 1 << 30
	}
	if initSize <= 0 {
		initSize = 4096
	}
	if initSize > maxSize {
		initSize = maxSize
	}
	return &Buffer{Data: make([]byte, initSize), max: initSize, maxAllowed: maxSize}
}

// EOF reports whether the feed has signaled end of input.
func (b *Buffer) EOF() bool { return b.eof }

// Finished reports whether all fed bytes have been consumed and no more
// will ever arrive.
func (b *Buffer) Finished() bool { return b.eof && b.Bot == b.Top }

// ensureSpace makes room for at least one more byte of input, preferring
// to compact the already-consumed prefix over growing the backing array.
func (b *Buffer) ensureSpace() (err error) {
	if b.Bot > 0 {
		n := b.Top - b.Bot
		copy(b.Data, b.Data[b.Bot:b.Top])
		b.Bot = 0
		b.Top = n
		return nil
	}
	if b.max >= b.maxAllowed {
		return ErrRowTooLarge
	}
	newMax := b.max + b.max/2 + 16
	if newMax > b.maxAllowed {
		newMax = b.maxAllowed
	}
	newData, allocErr := growAlloc(newMax)
	if allocErr != nil {
		return allocErr
	}
	copy(newData, b.Data[:b.Top])
	b.Data = newData
	b.max = newMax
	return nil
}

// growAlloc allocates n bytes, recovering a runtime out-of-memory panic
// into ErrOutOfMemory rather than crashing the process. A library whose
// caller controls MaxBufSize must not bring down the whole program on a
// pathological size.
func growAlloc(n int) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, ErrOutOfMemory
		}
	}()
	return make([]byte, n), nil
}

// Refill pulls more bytes from feed into the buffer. On EOF it
// synthesizes a trailing '\n' if the last fed byte wasn't already one,
// so the row machine always sees a properly terminated final row.
func (b *Buffer) Refill(ctx context.Context, feed FeedFunc) error {
	if b.eof {
		return nil
	}
	if b.max-b.Top <= 1 {
		if err := b.ensureSpace(); err != nil {
			return err
		}
	}
	n, err := feed(ctx, b.Data[b.Top:b.max-1])
	if n < 0 {
		n = 0
	}
	b.Top += n
	switch {
	case err != nil && errors.Is(err, io.EOF):
		b.eof = true
	case err != nil:
		return err
	case n == 0:
		b.eof = true
	}
	if b.eof && b.Top > b.Bot && b.Data[b.Top-1] != '\n' {
		if b.Top >= b.max {
			if err := b.ensureSpace(); err != nil {
				return err
			}
		}
		b.Data[b.Top] = '\n'
		b.Top++
	}
	return nil
}
