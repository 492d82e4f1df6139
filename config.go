package streamcsv

import "fmt"

// Size defaults mirror the reference C implementation's initial and
// maximum buffer sizes.
const (
	DefaultInitBufSize = 4096
	DefaultMaxBufSize  = 1 << 30

	maxNullStringLen = 15
)

// Config controls the dialect and resource limits a Parser uses. The
// zero value is not directly usable; build one with DefaultConfig and
// override only the fields that need to change.
type Config struct {
	// Quote, Escape and Delim select the CSV dialect. Escape defaults to
	// Quote (the common "" doubling convention) when left zero.
	Quote  byte
	Escape byte
	Delim  byte

	// InitBufSize and MaxBufSize bound the internal input buffer. A row
	// (including any quoted field) that would need more than MaxBufSize
	// bytes of buffered input fails with ErrRowTooLarge.
	InitBufSize int
	MaxBufSize  int

	// NullString, when non-empty, is the sentinel that marks an
	// unquoted cell as SQL-style NULL rather than an empty string. It is
	// never matched against quoted cells. At most 15 bytes.
	NullString []byte

	// UnquoteValues controls whether delivered cells have surrounding
	// quotes stripped and escape sequences collapsed before the perrow
	// callback sees them. When false, callbacks receive raw bytes
	// exactly as they appeared in the source, quotes included.
	UnquoteValues bool

	// SkipHeader causes the first row to be parsed (and counted against
	// Rowno) but not delivered to the perrow callback.
	SkipHeader bool
}

// DefaultConfig returns the common comma/quote/quote dialect with
// unquoting enabled and the reference buffer size defaults.
func DefaultConfig() Config {
	return Config{
		Quote:         '"',
		Escape:        '"',
		Delim:         ',',
		InitBufSize:   DefaultInitBufSize,
		MaxBufSize:    DefaultMaxBufSize,
		UnquoteValues: true,
	}
}

func (c Config) normalize() (Config, error) {
	if c.Quote == 0 {
		c.Quote = '"'
	}
	if c.Escape == 0 {
		c.Escape = c.Quote
	}
	if c.Delim == 0 {
		c.Delim = ','
	}
	if c.Quote == c.Delim || c.Quote == '\n' || c.Delim == '\n' {
		return c, fmt.Errorf("streamcsv: quote, delim and newline must be three distinct bytes")
	}
	if c.InitBufSize <= 0 {
		c.InitBufSize = DefaultInitBufSize
	}
	if c.MaxBufSize <= 0 {
		c.MaxBufSize = DefaultMaxBufSize
	}
	if c.InitBufSize > c.MaxBufSize {
		c.InitBufSize = c.MaxBufSize
	}
	if len(c.NullString) > maxNullStringLen {
		return c, fmt.Errorf("streamcsv: nullstr exceeds %d bytes", maxNullStringLen)
	}
	return c, nil
}
