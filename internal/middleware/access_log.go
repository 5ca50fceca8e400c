package middleware

import (
	"io"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request to w, normally the same rotating
// file logrus uses.
func AccessLog(w io.Writer, skipPaths ...string) gin.HandlerFunc {
	return ginlog.SetLogger(
		ginlog.WithWriter(w),
		ginlog.WithUTC(true),
		ginlog.WithSkipPath(skipPaths),
	)
}
