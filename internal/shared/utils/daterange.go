package utils

import (
	"time"

	"github.com/gin-gonic/gin"

	"garrison/internal/shared/errors"
)

// dateLayouts are the accepted formats for startDate/endDate query parameters.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDateRange parses the optional startDate/endDate query parameters.
// An absent start defaults to the epoch, an absent end defaults to now, so a
// range is always well defined for aggregation queries.
func ParseDateRange(c *gin.Context) (start, end time.Time, err error) {
	start = time.Unix(0, 0).UTC()
	end = time.Now().UTC()

	if raw := c.Query("startDate"); raw != "" {
		start, err = parseDate(raw)
		if err != nil {
			return start, end, errors.NewValidationError("Invalid startDate format, expected ISO-8601")
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err = parseDate(raw)
		if err != nil {
			return start, end, errors.NewValidationError("Invalid endDate format, expected ISO-8601")
		}
	}
	return start, end, nil
}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
