package unquote

import (
	"testing"

	"github.com/cktan-csv/streamcsv/internal/rowmachine"
)

func apply(s string, quoted bool, quote, escape byte, nullStr string) (string, bool) {
	v := rowmachine.Value{Ptr: []byte(s), Quoted: quoted}
	Apply(&v, quote, escape, []byte(nullStr))
	return string(v.Ptr), v.Ptr == nil
}

func TestApplyUnquotedPassthrough(t *testing.T) {
	got, isNull := apply("hello", false, '"', '"', "")
	if got != "hello" || isNull {
		t.Fatalf("got %q, null=%v", got, isNull)
	}
}

func TestApplyUnquotedNullString(t *testing.T) {
	_, isNull := apply(`\N`, false, '"', '"', `\N`)
	if !isNull {
		t.Fatal("expected null sentinel recognized")
	}
}

func TestApplyQuotedFastPath(t *testing.T) {
	got, _ := apply(`"hello"`, true, '"', '"', "")
	if got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyQuotedDoubledQuote(t *testing.T) {
	got, _ := apply(`"a""b"`, true, '"', '"', "")
	if got != `a"b` {
		t.Fatalf("got %q, want a\"b", got)
	}
}

func TestApplyQuotedDistinctEscape(t *testing.T) {
	got, _ := apply(`"a\"b"`, true, '"', '\\', "")
	if got != `a"b` {
		t.Fatalf("got %q, want a\"b", got)
	}
	got, _ = apply(`"a\\b"`, true, '"', '\\', "")
	if got != `a\b` {
		t.Fatalf("got %q, want a\\b", got)
	}
}

func TestApplyQuotedEscapeLiteralNoOp(t *testing.T) {
	// escape byte not followed by quote or escape: stays literal.
	got, _ := apply(`"a\b"`, true, '"', '\\', "")
	if got != `a\b` {
		t.Fatalf("got %q, want a\\b", got)
	}
}

func TestApplyQuotedCellNeverRecognizesNull(t *testing.T) {
	got, isNull := apply(`"\N"`, true, '"', '"', `\N`)
	if isNull {
		t.Fatal("quoted cell must never be treated as the null sentinel")
	}
	if got != `\N` {
		t.Fatalf("got %q", got)
	}
}

func TestApplyRoundTrip(t *testing.T) {
	cases := []string{"simple", "with,comma", "with\"quote", "with\nnewline"}
	for _, c := range cases {
		quoted := quoteFor(c, '"', '"')
		got, _ := apply(quoted, true, '"', '"', "")
		if got != c {
			t.Fatalf("round trip %q: got %q via %q", c, got, quoted)
		}
	}
}

// quoteFor is a small test-only inverse of Apply's quoted general path,
// used to build round-trip fixtures.
func quoteFor(s string, quote, escape byte) string {
	out := []byte{quote}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == quote || (escape != quote && c == escape) {
			out = append(out, escape)
		}
		out = append(out, c)
	}
	out = append(out, quote)
	return string(out)
}
