package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs each HTTP request with latency and status
func ZapEchoMiddleware(zapLogger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if uid := c.Get("user_id"); uid != nil {
				userID = fmt.Sprintf("%v", uid)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			fields := []Field{
				String("method", method),
				String("path", path),
				Int("status", statusCode),
				Duration("latency", latency),
				String("client_ip", clientIP),
				String("user_id", userID),
				String("request_id", requestID),
			}

			if err != nil {
				fields = append(fields, Err(err))
				zapLogger.Error("HTTP request failed", fields...)
				return err
			}

			if statusCode >= 500 {
				zapLogger.Error("HTTP request", fields...)
			} else if statusCode >= 400 {
				zapLogger.Warn("HTTP request", fields...)
			} else {
				zapLogger.Info("HTTP request", fields...)
			}

			return nil
		}
	}
}
