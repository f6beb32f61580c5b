// Package logging provides redaction of sensitive data in log output.
package logging

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// sensitiveFieldNames are log field names whose values are always masked
var sensitiveFieldNames = []string{"token", "private_token", "password", "secret", "authorization"} //nolint:gochecknoglobals // fixed redaction list

// sensitivePatterns match token material embedded in free-form text
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // fixed redaction list
	regexp.MustCompile(`(?i)(private-token|authorization):\s*\S+`),
	regexp.MustCompile(`(?i)(private_token|token)=[^&\s]+`),
	regexp.MustCompile(`glpat-[a-zA-Z0-9_\-]{8,}`),
}

// RedactSensitive masks token material in the given text
func RedactSensitive(text string) string {
	for _, pattern := range sensitivePatterns {
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			if idx := strings.IndexAny(match, ":="); idx >= 0 {
				return match[:idx+1] + "REDACTED"
			}
			return "REDACTED"
		})
	}
	return text
}

// RedactionHook is a logrus hook that scrubs sensitive values from every
// entry before it is written
type RedactionHook struct{}

// Levels implements logrus.Hook for all levels
func (h *RedactionHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook
func (h *RedactionHook) Fire(entry *logrus.Entry) error {
	entry.Message = RedactSensitive(entry.Message)

	for key, value := range entry.Data {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if isSensitiveField(key) {
			entry.Data[key] = "REDACTED"
			continue
		}
		entry.Data[key] = RedactSensitive(s)
	}
	return nil
}

func isSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range sensitiveFieldNames {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
