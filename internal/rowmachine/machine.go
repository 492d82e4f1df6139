// Package rowmachine implements the two-state (UNQUOTED/QUOTED) row
// parser that turns a buffered byte range into one row's worth of
// values. It never allocates except to grow the caller-owned value
// slice, and it never blocks: when the buffered range ends before a row
// does, it reports a suspension so the caller can refill and retry from
// scratch.
package rowmachine

import "github.com/cktan-csv/streamcsv/internal/scan"

// Value is one delivered cell: a slice into the parser's input buffer,
// plus whether the source text was quoted (relevant for unquoting and
// for null-string recognition, which only applies to unquoted cells).
type Value struct {
	Ptr    []byte
	Quoted bool
}

// Outcome describes how a ParseRow attempt ended.
type Outcome int

const (
	// OutcomeRow means a complete row was parsed and dst holds its values.
	OutcomeRow Outcome = iota
	// OutcomeSuspend means the buffered range ended mid-row; the caller
	// must refill and call ParseRow again from the same start index.
	OutcomeSuspend
	// OutcomeNoData means start == limit: nothing buffered to parse yet.
	OutcomeNoData
	// OutcomeErrUnterminatedRow means EOF was reached with an unterminated
	// unquoted value (no closing newline ever arrived).
	OutcomeErrUnterminatedRow
	// OutcomeErrUnterminatedQuote means EOF was reached inside a quoted
	// value whose closing quote never arrived.
	OutcomeErrUnterminatedQuote
)

type state int

const (
	stateStartVal state = iota
	stateUnquoted
	stateQuoted
	stateEndVal
	stateEndRow
)

// Machine parses one row at a time against a fixed delimiter/quote/escape
// configuration. It is not safe for concurrent use by multiple
// goroutines, matching the single-threaded cooperative model of the
// parser that owns it.
type Machine struct {
	scanner              *scan.Scanner
	quote, escape, delim byte
	escIsQuote           bool
}

// New builds a Machine for the given quote, escape and delimiter bytes.
func New(quote, escape, delim byte) *Machine {
	return &Machine{
		scanner:    scan.New(quote, escape, delim, '\n'),
		quote:      quote,
		escape:     escape,
		delim:      delim,
		escIsQuote: escape == quote,
	}
}

// ParseRow attempts to parse one row out of data[start:limit]. On
// OutcomeRow it has appended the row's values to *dst (which is
// truncated to length zero on entry) and returns the index where the
// next row should start plus the number of newline bytes consumed by
// this row. On OutcomeSuspend dst is left empty: no partial progress
// survives a suspension, so the caller can retry from start once more
// data is available. On an error outcome dst holds only the cells
// completed before the failure.
func (m *Machine) ParseRow(data []byte, start, limit int, eof bool, dst *[]Value) (next int, newlines int, outcome Outcome) {
	*dst = (*dst)[:0]
	defer func() {
		if outcome == OutcomeSuspend {
			*dst = (*dst)[:0]
		}
	}()
	if start == limit {
		return start, 0, OutcomeNoData
	}

	m.scanner.Reset(data, start, limit)

	st := stateStartVal
	p := start
	var pp int
	quoted := false

	for {
		switch st {
		case stateStartVal:
			quoted = false
			st = stateUnquoted

		case stateUnquoted:
			pos, ok := m.scanner.Next()
			if !ok {
				if eof {
					return start, 0, OutcomeErrUnterminatedRow
				}
				return start, 0, OutcomeSuspend
			}
			pp = pos
			switch data[pp] {
			case m.quote:
				quoted = true
				st = stateQuoted
			case m.delim:
				st = stateEndVal
			case '\n':
				st = stateEndRow
			default: // m.escape, when distinct from quote/delim/newline: literal, no-op
				st = stateUnquoted
			}

		case stateQuoted:
			pos, ok := m.scanner.Next()
			if !ok {
				if eof {
					return start, 0, OutcomeErrUnterminatedQuote
				}
				return start, 0, OutcomeSuspend
			}
			pp = pos
			ch := data[pp]
			switch {
			case ch == m.quote || ch == m.escape:
				if m.escIsQuote {
					nb, pok := m.scanner.Peek()
					switch {
					case !pok && !eof:
						return start, 0, OutcomeSuspend
					case pok && nb == m.quote:
						m.scanner.Next()
						st = stateQuoted
					default:
						st = stateUnquoted
					}
				} else if ch == m.quote {
					st = stateUnquoted
				} else {
					nb, pok := m.scanner.Peek()
					if !pok && !eof {
						return start, 0, OutcomeSuspend
					}
					if pok && (nb == m.quote || nb == m.escape) {
						m.scanner.Next()
					}
					st = stateQuoted
				}
			case ch == '\n':
				newlines++
				st = stateQuoted
			default: // ch == m.delim
				st = stateQuoted
			}

		case stateEndVal:
			*dst = append(*dst, Value{Ptr: data[p:pp], Quoted: quoted})
			p = pp + 1
			st = stateStartVal

		case stateEndRow:
			newlines++
			end := pp
			if end > p && data[end-1] == '\r' {
				end--
			}
			*dst = append(*dst, Value{Ptr: data[p:end], Quoted: quoted})
			return pp + 1, newlines, OutcomeRow
		}
	}
}
