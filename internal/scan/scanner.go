// Package scan implements the byte scanner that drives the row state
// machine: given an accept set of up to four special bytes (quote,
// escape, delimiter, newline), it finds the next occurrence of any of
// them in a buffered byte range.
package scan

// Scanner locates the next occurrence of a small accept set of bytes
// within a byte slice. It holds no data of its own between calls other
// than the current scan position, so a single Scanner can be reused
// across many rows via Reset.
type Scanner struct {
	data       []byte
	pos, limit int
	accept     [4]byte
	n          int
	find       func(data []byte, pos, limit int, accept [4]byte, n int) int
}

// New returns a Scanner configured for the given quote, escape, delimiter
// and newline bytes, using the fastest backend available on this platform.
func New(quote, escape, delim, newline byte) *Scanner {
	return newScanner(quote, escape, delim, newline, currentBackend)
}

// NewScalar returns a Scanner forced onto the portable scalar backend,
// regardless of what the platform-accelerated backend would pick. It
// exists so tests can check the two backends agree byte-for-byte.
func NewScalar(quote, escape, delim, newline byte) *Scanner {
	return newScanner(quote, escape, delim, newline, scanScalar)
}

func newScanner(quote, escape, delim, newline byte, backend func([]byte, int, int, [4]byte, int) int) *Scanner {
	s := &Scanner{find: backend}
	s.accept[0] = quote
	s.accept[1] = delim
	s.accept[2] = newline
	s.n = 3
	if escape != quote {
		s.accept[3] = escape
		s.n = 4
	}
	return s
}

// Reset points the scanner at data[p:q]; p is both the lower bound and
// the initial scan cursor.
func (s *Scanner) Reset(data []byte, p, q int) {
	s.data = data
	s.pos = p
	s.limit = q
}

// Next scans forward from the cursor for the next accept-set byte. On a
// match it returns the byte's absolute index and advances the cursor to
// one past it, so the following Next call resumes the search from there.
// ok is false once the cursor reaches the end of the configured range
// without a match.
func (s *Scanner) Next() (pos int, ok bool) {
	idx := s.find(s.data, s.pos, s.limit, s.accept, s.n)
	if idx < 0 {
		s.pos = s.limit
		return 0, false
	}
	s.pos = idx + 1
	return idx, true
}

// Peek reports the raw byte currently sitting at the cursor, without
// consuming it and without regard to whether it belongs to the accept
// set. It is used to disambiguate a doubled quote/escape byte that
// immediately follows a popped match.
func (s *Scanner) Peek() (ch byte, ok bool) {
	if s.pos < s.limit {
		return s.data[s.pos], true
	}
	return 0, false
}
