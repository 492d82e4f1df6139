// Package streamcsv implements a pull-based, streaming CSV parser core
// modeled on cktan/csvc17's feed/perrow callback protocol: the caller
// supplies bytes on demand via a FeedFunc and receives parsed rows one
// at a time via a PerRowFunc, so arbitrarily large input can be parsed
// in bounded memory without the caller ever handing over a whole
// io.Reader for the parser to drive itself.
package streamcsv

import (
	"context"

	"github.com/cktan-csv/streamcsv/internal/buffer"
	"github.com/cktan-csv/streamcsv/internal/rowmachine"
	"github.com/cktan-csv/streamcsv/internal/unquote"
)

// Value is one delivered cell.
type Value = rowmachine.Value

// FeedFunc supplies more input bytes on demand. It follows io.Reader's
// own EOF convention: a final non-zero n may arrive alongside io.EOF,
// or EOF may be signaled on its own with n == 0.
type FeedFunc = buffer.FeedFunc

// PerRowFunc is invoked once per parsed row. row is only valid for the
// duration of the call; a callback that needs to retain cell data past
// its return must copy it. Returning a non-nil error aborts the parse;
// an error with an empty Error() string is replaced by ErrCallback in
// the returned ParseError.
type PerRowFunc func(ctx context.Context, row []Value, lineno, rowno int64) error

// Parser drives the feed/row-machine/unquote pipeline. A single Parse
// call runs until the feed reaches EOF and every buffered row has been
// delivered, or until an error occurs; a later Parse call on a Parser
// that finished successfully returns nil without calling feed.
//
// A Parser is not reentrant: calling Parse while another call on the
// same Parser is already running panics. It is not safe for concurrent
// use by multiple goroutines.
type Parser struct {
	cfg     Config
	buf     *buffer.Buffer
	machine *rowmachine.Machine
	values  []Value

	lineno int64
	rowno  int64

	ok      bool
	lastErr error
	running bool
}

// Open creates a Parser for the given configuration. A nil cfg selects
// DefaultConfig(). Open mirrors csv_open's three-phase
// open/parse/close lifecycle: resources (the input buffer and value
// table) are allocated once here and released by Close, regardless of
// how Parse exits.
func Open(cfg *Config) (*Parser, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	nc, err := c.normalize()
	if err != nil {
		return nil, err
	}
	return &Parser{
		cfg:     nc,
		buf:     buffer.New(nc.InitBufSize, nc.MaxBufSize),
		machine: rowmachine.New(nc.Quote, nc.Escape, nc.Delim),
		ok:      true,
		lineno:  1,
	}, nil
}

// Ok reports whether the parser has not yet failed. Once a Parse call
// returns a non-nil error, Ok returns false and every subsequent Parse
// call returns that same error without doing any work: a failed parser
// cannot be resumed, only closed.
func (p *Parser) Ok() bool { return p.ok }

// Lineno and Rowno report the 1-based counters as of the most recently
// delivered (or attempted) row.
func (p *Parser) Lineno() int64 { return p.lineno }
func (p *Parser) Rowno() int64  { return p.rowno }

func (p *Parser) fail(line, row, col int64, err error) error {
	pe := &ParseError{Line: line, Row: row, Col: col, Err: err}
	p.ok = false
	p.lastErr = pe
	return pe
}

// Parse runs the feed/parse/callback loop until feed reports EOF and
// every buffered byte has been consumed, or until an error occurs in
// feeding, parsing or the callback. It checks ctx between rows and on
// every refill, returning ctx.Err() promptly if the context is done.
func (p *Parser) Parse(ctx context.Context, feed FeedFunc, perrow PerRowFunc) error {
	if !p.ok {
		return p.lastErr
	}
	if p.running {
		panic("streamcsv: Parse called reentrantly on the same Parser")
	}
	p.running = true
	defer func() { p.running = false }()

outer:
	for !p.buf.Finished() {
		if err := ctx.Err(); err != nil {
			return p.fail(p.lineno, p.rowno+1, 1, err)
		}
		if !p.buf.EOF() {
			if err := p.buf.Refill(ctx, feed); err != nil {
				return p.fail(p.lineno, p.rowno+1, 1, err)
			}
		}

		for {
			if err := ctx.Err(); err != nil {
				return p.fail(p.lineno, p.rowno+1, int64(len(p.values)+1), err)
			}

			next, newlines, outcome := p.machine.ParseRow(p.buf.Data, p.buf.Bot, p.buf.Top, p.buf.EOF(), &p.values)
			switch outcome {
			case rowmachine.OutcomeSuspend, rowmachine.OutcomeNoData:
				continue outer
			case rowmachine.OutcomeErrUnterminatedRow:
				return p.fail(p.lineno+1, p.rowno+1, int64(len(p.values)+1), ErrUnterminatedRow)
			case rowmachine.OutcomeErrUnterminatedQuote:
				return p.fail(p.lineno+1, p.rowno+1, int64(len(p.values)+1), ErrUnterminatedQuote)
			}

			p.buf.Bot = next
			p.lineno += int64(newlines)
			p.rowno++

			if p.cfg.SkipHeader && p.rowno == 1 {
				continue
			}

			if p.cfg.UnquoteValues {
				for i := range p.values {
					unquote.Apply(&p.values[i], p.cfg.Quote, p.cfg.Escape, p.cfg.NullString)
				}
			}

			if err := perrow(ctx, p.values, p.lineno, p.rowno); err != nil {
				return p.fail(p.lineno, p.rowno, int64(len(p.values)+1), wrapCallbackErr(err))
			}
		}
	}

	p.ok = true
	return nil
}

// Close releases the parser's internal buffer and value table. After
// Close, the Parser must not be used again.
func (p *Parser) Close() error {
	p.buf = nil
	p.machine = nil
	p.values = nil
	return nil
}
