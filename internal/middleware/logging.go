package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging writes one key=value access line per HTTP request.
func Logging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			log.Printf("request_id=%s remote_ip=%s method=%s path=%s status=%d bytes_out=%d latency=%s",
				RequestIDFromContext(c), c.RealIP(), req.Method, req.URL.Path, res.Status, res.Size, latency)

			return err
		}
	}
}
