package transport

import (
	"net/http"
	"strconv"
	"time"
)

// yearMonth reads the year and month query parameters. Reports are a
// viewing surface, so absent or unparsable values fall back to the
// current date instead of erroring.
func yearMonth(r *http.Request, now time.Time) (int, int) {
	year := now.Year()
	month := int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			year = parsed
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 12 {
			month = parsed
		}
	}

	return year, month
}
