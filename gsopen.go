package correlate

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// gsObject adapts a Google Storage object handle to io.ReadSeekCloser.
// True seeking is not possible over the wire: seeking back to the start
// drops the open connection, and the next Read begins a fresh ranged
// request from byte 0.
type gsObject struct {
	handle *storage.ObjectHandle
	ctx    context.Context
	r      *storage.Reader
}

func (g *gsObject) Read(p []byte) (int, error) {
	if g.r == nil {
		var err error
		g.r, err = g.handle.NewRangeReader(g.ctx, 0, -1)
		if err != nil {
			return 0, err
		}
	}

	return g.r.Read(p)
}

func (g *gsObject) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekStart || offset != 0 {
		return 0, fmt.Errorf("remote objects can only seek back to the start, got offset %d whence %d", offset, whence)
	}

	if g.r != nil {
		if err := g.r.Close(); err != nil {
			return 0, err
		}
		g.r = nil
	}

	return 0, nil
}

func (g *gsObject) Close() error {
	if g.r == nil {
		return nil
	}

	return g.r.Close()
}

// MaybeOpenFromGoogleStorage opens a local path, or a gs:// URL when a
// storage client is provided. The gs:// case fails up front if the
// object cannot be found, rather than at the first read.
func MaybeOpenFromGoogleStorage(path string, client *storage.Client) (io.ReadSeekCloser, error) {
	if client != nil && strings.HasPrefix(path, "gs://") {
		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 {
			return nil, pfx.Err(fmt.Errorf("expected gs://bucket/object, got %s", path))
		}

		handle := client.Bucket(pathParts[0]).Object(pathParts[1])

		ctx := context.Background()
		if _, err := handle.Attrs(ctx); err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
		}

		return &gsObject{handle: handle, ctx: ctx}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}
