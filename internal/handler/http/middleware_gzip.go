package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-travel-booking/internal/app"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipRequest transparently decompresses request bodies sent with
// Content-Encoding: gzip. Response compression is handled by chi's
// middleware.Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") || r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
			return
		}

		r.Body = &pooledGzipBody{reader: gzipReader, source: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// pooledGzipBody returns its reader to the pool on Close.
type pooledGzipBody struct {
	reader *gzip.Reader
	source io.ReadCloser
	closed bool
}

func (b *pooledGzipBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *pooledGzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	_ = b.reader.Close()
	gzipReaderPool.Put(b.reader)
	return b.source.Close()
}
