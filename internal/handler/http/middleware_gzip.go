package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Snapshot payloads are base64-heavy JSON and compress well, so both request
// and response bodies go through pooled gzip codecs.
var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaders.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaders.Put(zr)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &pooledBody{
				Reader: zr,
				release: func() {
					zr.Close()
					gzipReaders.Put(zr)
				},
			}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: zw}, r)

		zw.Close()
		gzipWriters.Put(zw)
	})
}

// pooledBody returns its gzip reader to the pool on Close instead of
// discarding it.
type pooledBody struct {
	io.Reader
	release func()
}

func (b *pooledBody) Close() error {
	if b.release != nil {
		b.release()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	return w.gzipWriter.Close()
}
