package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields added to every log record written with the context.
// Handlers and services enrich the context once and the TraceHandler emits the fields.
type LogFields struct {
	BugID      *int64
	TestCaseID *int64
	ReportID   *int64
	UserID     *int64
	Operation  *string // AI operation name, e.g. "analyze_bug"
	Component  string  // e.g. "bugtracker.service.analysis"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, newer non-nil values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.BugID != nil {
		result.BugID = next.BugID
	}
	if next.TestCaseID != nil {
		result.TestCaseID = next.TestCaseID
	}
	if next.ReportID != nil {
		result.ReportID = next.ReportID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.Operation != nil {
		result.Operation = next.Operation
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v, for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate shortens s to maxLen bytes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
