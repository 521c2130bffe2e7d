package service

import "errors"

var (
	ErrBugNotFound      = errors.New("bug not found")
	ErrTestCaseNotFound = errors.New("test case not found")
	ErrReportNotFound   = errors.New("report not found")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrNoData           = errors.New("no data to export")
	ErrAIUnavailable    = errors.New("ai assistant is not configured")
	ErrEmptyUpdate      = errors.New("no fields to update")
)
