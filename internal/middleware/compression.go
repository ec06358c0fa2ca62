package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// uncompressedPaths are polled by health checks and Prometheus, which gain nothing from gzip.
var uncompressedPaths = []string{"/metrics", "/healthz", "/readyz"}

// Compression gzips JSON responses such as spool listings and the summary
// for clients that accept it.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.BestSpeed, gzip.WithExcludedPaths(uncompressedPaths))
}
