package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// MaxRequestBody caps decompressed request payloads.
const MaxRequestBody = 1 << 20

// DecompressRequest transparently handles gzip encoded requests.
// The inflated body is limited to MaxRequestBody bytes.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gzipEncoded(c.GetHeader("Content-Encoding")) {
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, io.NopCloser(reader), MaxRequestBody)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}

// CompressResponse gzips responses for clients that accept it. Probe paths stay plain.
func CompressResponse(excludedPaths ...string) gin.HandlerFunc {
	return ginGzip.Gzip(ginGzip.DefaultCompression, ginGzip.WithExcludedPaths(excludedPaths))
}

func gzipEncoded(header string) bool {
	for _, enc := range strings.Split(header, ",") {
		if strings.EqualFold(strings.TrimSpace(enc), "gzip") {
			return true
		}
	}
	return false
}
