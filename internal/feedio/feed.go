// Package feedio adapts ordinary Go input sources -- an io.Reader, an
// *os.File -- into the buffer.FeedFunc shape the parser core expects,
// mirroring csvc17.c's read_file glue around its csv_feed_t callback.
package feedio

import (
	"context"
	"io"
	"os"
)

// Reader adapts an io.Reader into a FeedFunc. It is a thin pass-through:
// io.Reader's (n, err) already matches the FeedFunc contract.
func Reader(r io.Reader) func(ctx context.Context, buf []byte) (int, error) {
	return func(_ context.Context, buf []byte) (int, error) {
		return r.Read(buf)
	}
}

// File opens path and returns a FeedFunc reading from it plus a closer
// the caller must invoke once parsing is done (on every code path,
// success or failure, matching csv_close's unconditional fclose).
func File(path string) (feed func(ctx context.Context, buf []byte) (int, error), closer func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	adviseSequential(f)
	return Reader(f), f.Close, nil
}
