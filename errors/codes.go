package errors

// ErrorCode is the machine-readable code returned in error envelopes.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED      ErrorCode = 0
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_NOT_IMPLEMENTED  ErrorCode = 1004

	// Upload
	ErrorCode_UPLOAD_MISSING_FILE     ErrorCode = 2000
	ErrorCode_UPLOAD_UNSUPPORTED_TYPE ErrorCode = 2001
	ErrorCode_UPLOAD_FILE_TOO_LARGE   ErrorCode = 2002
	ErrorCode_UPLOAD_STORE_FAILED     ErrorCode = 2003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 5000

	ErrorCode_PROCESSING_FAILED ErrorCode = 6000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                "UNSPECIFIED",
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_NOT_IMPLEMENTED:            "NOT_IMPLEMENTED",
	ErrorCode_UPLOAD_MISSING_FILE:        "UPLOAD_MISSING_FILE",
	ErrorCode_UPLOAD_UNSUPPORTED_TYPE:    "UPLOAD_UNSUPPORTED_TYPE",
	ErrorCode_UPLOAD_FILE_TOO_LARGE:      "UPLOAD_FILE_TOO_LARGE",
	ErrorCode_UPLOAD_STORE_FAILED:        "UPLOAD_STORE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_PROCESSING_FAILED:          "PROCESSING_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
