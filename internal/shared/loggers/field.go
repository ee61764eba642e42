package loggers

const (
	FieldApp       = "app"
	FieldRunID     = "run_id"

	FieldSourcePath = "source_path"
	FieldLineNumber = "line_number"
	FieldReason     = "reason"
	FieldDuration   = "duration"
	FieldErrorCode  = "error_code"
)
