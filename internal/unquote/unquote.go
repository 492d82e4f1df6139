// Package unquote strips surrounding quotes and collapses escape
// sequences in a cell's bytes in place, and recognizes the configured
// null-string sentinel on unquoted cells.
package unquote

import (
	"bytes"

	"github.com/cktan-csv/streamcsv/internal/rowmachine"
)

// Apply rewrites v in place: unquoted cells are checked against
// nullStr (nil Ptr signals the null sentinel); quoted cells have their
// surrounding quotes stripped and any escaped quote/escape pairs
// collapsed to a single literal byte.
func Apply(v *rowmachine.Value, quote, escape byte, nullStr []byte) {
	if !v.Quoted {
		if len(nullStr) > 0 && bytes.Equal(v.Ptr, nullStr) {
			v.Ptr = nil
		}
		return
	}

	p := v.Ptr
	n := len(p)
	if n < 2 {
		return
	}

	// Fast path: "xxxx" with no escape byte anywhere in the interior,
	// so there is nothing to collapse -- just drop the surrounding quotes.
	if p[0] == quote && p[n-1] == quote && bytes.IndexByte(p[1:n-1], escape) == -1 {
		v.Ptr = p[1 : n-1]
		return
	}

	// General path: walk the cell collapsing EE/EQ (distinct escape) or
	// QQ (escape == quote) pairs into a single output byte, in place.
	out := p[:0]
	escIsQuote := escape == quote
	i := 0
	if p[0] == quote {
		i = 1 // skip the opening quote
	}
	for i < n {
		c := p[i]
		if !escIsQuote && c == escape && i+1 < n && (p[i+1] == escape || p[i+1] == quote) {
			out = append(out, p[i+1])
			i += 2
			continue
		}
		if c == quote {
			if escIsQuote && i+1 < n && p[i+1] == quote {
				out = append(out, quote)
				i += 2
				continue
			}
			// the closing quote (or, malformed input aside, treated as one)
			i++
			continue
		}
		out = append(out, c)
		i++
	}
	v.Ptr = out
}
