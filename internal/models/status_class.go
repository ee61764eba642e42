package models

// StatusClass is the bucket a response status code falls into.
type StatusClass string

const (
	Status2xx   StatusClass = "2xx"
	Status3xx   StatusClass = "3xx"
	Status4xx   StatusClass = "4xx"
	Status5xx   StatusClass = "5xx"
	StatusOther StatusClass = "other"
)

// ClassifyStatus buckets a status code by its leading character only.
// Anything that does not start with 2-5 (1xx, empty, non-numeric) is StatusOther.
func ClassifyStatus(code string) StatusClass {
	if code == "" {
		return StatusOther
	}
	switch code[0] {
	case '2':
		return Status2xx
	case '3':
		return Status3xx
	case '4':
		return Status4xx
	case '5':
		return Status5xx
	default:
		return StatusOther
	}
}

// IsError reports whether the class counts toward the error rate.
func (c StatusClass) IsError() bool {
	return c == Status4xx || c == Status5xx
}
