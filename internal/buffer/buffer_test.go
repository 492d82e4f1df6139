package buffer

import (
	"context"
	"io"
	"testing"
)

func feedString(s string) FeedFunc {
	remaining := []byte(s)
	return func(_ context.Context, buf []byte) (int, error) {
		if len(remaining) == 0 {
			return 0, io.EOF
		}
		n := copy(buf, remaining)
		remaining = remaining[n:]
		if len(remaining) == 0 {
			return n, io.EOF
		}
		return n, nil
	}
}

func TestRefillSynthesizesTrailingNewline(t *testing.T) {
	b := New(16, 1024)
	feed := feedString("abc")
	for !b.EOF() {
		if err := b.Refill(context.Background(), feed); err != nil {
			t.Fatal(err)
		}
	}
	got := string(b.Data[b.Bot:b.Top])
	if got != "abc\n" {
		t.Fatalf("got %q, want %q", got, "abc\n")
	}
}

func TestRefillLeavesExistingNewlineAlone(t *testing.T) {
	b := New(16, 1024)
	feed := feedString("abc\n")
	for !b.EOF() {
		if err := b.Refill(context.Background(), feed); err != nil {
			t.Fatal(err)
		}
	}
	got := string(b.Data[b.Bot:b.Top])
	if got != "abc\n" {
		t.Fatalf("got %q, want %q", got, "abc\n")
	}
}

func TestRefillGrowsPastSmallInitialSize(t *testing.T) {
	b := New(4, 1024)
	long := ""
	for i := 0; i < 100; i++ {
		long += "x"
	}
	feed := feedString(long)
	for !b.EOF() {
		if err := b.Refill(context.Background(), feed); err != nil {
			t.Fatal(err)
		}
	}
	if got := b.Top - b.Bot; got != 101 {
		t.Fatalf("got %d buffered bytes, want 101 (100 + synthesized newline)", got)
	}
}

func TestRefillRespectsMaxSize(t *testing.T) {
	b := New(4, 8)
	long := "0123456789"
	feed := feedString(long)
	var err error
	for !b.EOF() && err == nil {
		err = b.Refill(context.Background(), feed)
	}
	if err != ErrRowTooLarge {
		t.Fatalf("got err=%v, want ErrRowTooLarge", err)
	}
}

func TestCompactionReclaimsConsumedSpace(t *testing.T) {
	b := New(8, 1024)
	feed := feedString("abcdefgh")
	if err := b.Refill(context.Background(), feed); err != nil {
		t.Fatal(err)
	}
	b.Bot = 7
	if err := b.Refill(context.Background(), feed); err != nil {
		t.Fatal(err)
	}
	if b.Bot != 0 {
		t.Fatalf("expected compaction to reset Bot to 0, got %d", b.Bot)
	}
}
