package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"blog-list/cmd/internal/logger"
	"blog-list/cmd/web/trace"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
)

// RequestTrace 는 모든 inbound 요청에 Request ID 를 보장하고 (없으면 생성),
// 컨텍스트와 응답 헤더에 저장한 뒤 완료 로그를 남긴다.
// 콘텐츠 API 호출은 같은 request id 로 span 1, 2, ... 을 사용한다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		ctx := trace.WithRequest(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, trace.CurrentSpanID(ctx))

		c.Next()

		fields := logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": requestID,
			"span_id":    trace.CurrentSpanID(ctx),
			"htmx":       c.GetHeader("HX-Request") == "true",
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.InfoWithFields("completed request", fields)
	}
}
