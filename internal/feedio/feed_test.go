package feedio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReaderPassesThrough(t *testing.T) {
	feed := Reader(strings.NewReader("hello"))
	buf := make([]byte, 16)
	n, err := feed(context.Background(), buf)
	if err != nil && n == 0 {
		t.Fatalf("feed: n=%d err=%v", n, err)
	}
	if string(buf[:n]) != "hello" {
		t.Fatalf("got %q", buf[:n])
	}
}

func TestFileFeedsContentsAndCloses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	if err := os.WriteFile(path, []byte("a,b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	feed, closer, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	defer closer()

	var out []byte
	buf := make([]byte, 4)
	for {
		n, err := feed(context.Background(), buf)
		out = append(out, buf[:n]...)
		if err != nil {
			break
		}
	}
	if string(out) != "a,b\n" {
		t.Fatalf("got %q", out)
	}
}
