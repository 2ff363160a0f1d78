package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Score viewer.
	InvalidPlayMode   failure.ErrorCode = "InvalidPlayMode"
	InvalidSortColumn failure.ErrorCode = "InvalidSortColumn"
	InvalidSortOrder  failure.ErrorCode = "InvalidSortOrder"
	InvalidLevel      failure.ErrorCode = "InvalidLevel"
	TrackerUnreadable failure.ErrorCode = "TrackerUnreadable"
	ColumnNotFound    failure.ErrorCode = "ColumnNotFound"

	// Events.
	InvalidPlayType      failure.ErrorCode = "InvalidPlayType"
	InvalidEventID       failure.ErrorCode = "InvalidEventID"
	EventFeedUnavailable failure.ErrorCode = "EventFeedUnavailable"

	// Exports.
	ExportUnavailable failure.ErrorCode = "ExportUnavailable"
	EmptyExport       failure.ErrorCode = "EmptyExport"

	// Profile.
	ProfileUnreadable failure.ErrorCode = "ProfileUnreadable"
)
