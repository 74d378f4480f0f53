// Package compress holds the brotli glue shared by the server and the client.
package compress

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
)

// Brotli is the Content-Encoding token for brotli.
const Brotli = "br"

type readCloserWrapper struct {
	io.Reader
	io.Closer
}

func (r *readCloserWrapper) Read(p []byte) (n int, err error) {
	return r.Reader.Read(p)
}

func (r *readCloserWrapper) Close() error {
	return r.Closer.Close()
}

// NewBrotliReadCloser decompresses rc. Closing the result closes rc.
func NewBrotliReadCloser(rc io.ReadCloser) io.ReadCloser {
	return &readCloserWrapper{Reader: brotli.NewReader(rc), Closer: rc}
}

// NewBrotliWriter matches the encoder signature used by chi's Compressor.
func NewBrotliWriter(w io.Writer, level int) io.Writer {
	return brotli.NewWriterLevel(w, level)
}

// DecodeRequestBody transparently inflates request bodies sent with Content-Encoding: br.
func DecodeRequestBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Encoding") == Brotli && r.Body != nil {
			r.Body = NewBrotliReadCloser(r.Body)
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1
		}
		next.ServeHTTP(w, r)
	})
}
