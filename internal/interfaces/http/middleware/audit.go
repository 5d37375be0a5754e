package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"garrison/internal/domain/audit"
	"garrison/internal/infrastructure/metrics"
	"garrison/internal/shared/constants"
	"garrison/internal/shared/logger"
)

const maxCapturedBodyBytes = 64 * 1024

// AuditMiddleware appends one log entry per qualifying API call. Writing the
// entry is best-effort: a failure is logged and counted but never changes the
// primary response.
type AuditMiddleware struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewAuditMiddleware(auditRepo audit.Repository, logger logger.Interface) *AuditMiddleware {
	return &AuditMiddleware{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(data []byte) (int, error) {
	if w.body.Len() < maxCapturedBodyBytes {
		w.body.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

func (m *AuditMiddleware) Record() gin.HandlerFunc {
	return func(c *gin.Context) {
		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxCapturedBodyBytes))
			c.Request.Body = io.NopCloser(bytes.NewReader(requestBody))
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		m.record(c, requestBody, writer)
	}
}

func (m *AuditMiddleware) record(c *gin.Context, requestBody []byte, writer *captureWriter) {
	url := c.Request.URL.RequestURI()
	isAuthEndpoint := strings.Contains(url, "/auth/")

	userID := c.GetUint(constants.ContextKeyUserID)
	if userID == 0 {
		// Unauthenticated requests are only logged for the auth endpoints,
		// attributed to the sentinel user.
		if !isAuthEndpoint {
			return
		}
		userID = constants.AuditSentinelUserID
	}

	method := c.Request.Method
	action := audit.ActionForRequest(method, url)

	responseData := writer.body.String()
	// The audit read endpoint would otherwise log its own prior pages,
	// growing without bound.
	if method == "GET" && strings.Contains(url, "/api/audit/logs") {
		responseData = "[audit logs omitted]"
	}

	details := audit.Details{
		Method:       method,
		URL:          url,
		StatusCode:   writer.Status(),
		RequestQuery: queryMap(c),
		ResponseData: responseData,
		UserAgent:    c.Request.UserAgent(),
		IPAddress:    c.ClientIP(),
	}
	if len(requestBody) > 0 {
		var parsed interface{}
		if err := json.Unmarshal(requestBody, &parsed); err == nil {
			details.RequestBody = redactSensitiveFields(parsed)
		} else {
			details.RequestBody = string(requestBody)
		}
	}

	entry := &audit.Entry{
		UserID:    userID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
		IPAddress: c.ClientIP(),
	}

	// Detached from the request context so client disconnects cannot
	// abort the write.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.auditRepo.Create(ctx, entry); err != nil {
		metrics.AuditWriteFailed()
		m.logger.Errorw("failed to write audit log", "error", err, "action", action, "user_id", userID)
		return
	}
	metrics.AuditWriteOK()
}

func queryMap(c *gin.Context) map[string]string {
	values := c.Request.URL.Query()
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]string, len(values))
	for key := range values {
		out[key] = values.Get(key)
	}
	return out
}

// redactSensitiveFields blanks credential fields in captured request bodies;
// plaintext passwords must never reach the log table.
func redactSensitiveFields(value interface{}) interface{} {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return value
	}
	for key := range obj {
		if strings.Contains(strings.ToLower(key), "password") {
			obj[key] = "[redacted]"
		}
	}
	return obj
}
