package logger

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// request log type
const requestType = "request"

// logRecord for Request Log
type logRecord struct {
	RequestID       string // AwsRequestID when running in Lambda
	Timestamp       time.Time
	Duration        time.Duration
	HTTPStatusCode  int
	ErrorStackTrace string
	HTTPMethod      string
	RequestPath     string
	RequestQuery    string
	ClientIP        string
}

func (record *logRecord) fields() []zap.Field {
	fields := []zap.Field{
		zap.String("type", requestType),
		zap.String("method", record.HTTPMethod),
		zap.String("path", record.RequestPath),
		zap.String("query", record.RequestQuery),
		zap.Int("status", record.HTTPStatusCode),
		zap.Duration("duration", record.Duration),
		zap.String("client_ip", record.ClientIP),
	}
	if record.RequestID != "" {
		fields = append(fields, zap.String("request_id", record.RequestID))
	}
	if record.ErrorStackTrace != "" {
		fields = append(fields, zap.String("stack", record.ErrorStackTrace))
	}
	return fields
}

// GinLogMiddleware logs one structured line per HTTP request, even on panic.
// Request and response bodies are not logged: they carry Jira data.
func GinLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		record := initLogRecord(c)

		defer func() {
			record.Duration = time.Since(record.Timestamp)
			GetLogger().Info("http request", record.fields()...)
		}()

		defer func() {
			if r := recover(); r != nil {
				record.HTTPStatusCode = http.StatusInternalServerError
				record.ErrorStackTrace = string(debug.Stack())
				// throw the panic to the later middlewares
				panic(r)
			}
		}()

		if lc, ok := lambdacontext.FromContext(c.Request.Context()); ok {
			record.RequestID = lc.AwsRequestID
		}

		c.Next()

		record.HTTPStatusCode = c.Writer.Status()
	}
}

func initLogRecord(c *gin.Context) *logRecord {
	return &logRecord{
		Timestamp:    time.Now(),
		HTTPMethod:   c.Request.Method,
		RequestPath:  c.Request.URL.Path,
		RequestQuery: c.Request.URL.RawQuery,
		ClientIP:     c.ClientIP(),
	}
}
