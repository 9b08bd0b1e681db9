package zenodo

// StatusCode enumerates the HTTP status codes the deposition API documents.
// The table exists for callers and tests; the client itself never branches
// on it.
type StatusCode int

// Documented status codes.
const (
	StatusOK                  StatusCode = 200
	StatusCreated             StatusCode = 201
	StatusAccepted            StatusCode = 202
	StatusNoContent           StatusCode = 204
	StatusBadRequest          StatusCode = 400
	StatusUnauthorized        StatusCode = 401
	StatusForbidden           StatusCode = 403
	StatusNotFound            StatusCode = 404
	StatusMethodNotAllowed    StatusCode = 405
	StatusConflict            StatusCode = 409
	StatusPayloadTooLarge     StatusCode = 413
	StatusUnsupportedMedia    StatusCode = 415
	StatusTooManyRequests     StatusCode = 429
	StatusInternalServerError StatusCode = 500
)

var statusNames = map[StatusCode]string{
	StatusOK:                  "OK",
	StatusCreated:             "Created",
	StatusAccepted:            "Accepted",
	StatusNoContent:           "No Content",
	StatusBadRequest:          "Bad Request",
	StatusUnauthorized:        "Unauthorized",
	StatusForbidden:           "Forbidden",
	StatusNotFound:            "Not Found",
	StatusMethodNotAllowed:    "Method Not Allowed",
	StatusConflict:            "Conflict",
	StatusPayloadTooLarge:     "Payload Too Large",
	StatusUnsupportedMedia:    "Unsupported Media Type",
	StatusTooManyRequests:     "Too Many Requests",
	StatusInternalServerError: "Internal Server Error",
}

// Known reports whether code is part of the documented status code set.
func Known(code int) bool {
	_, ok := statusNames[StatusCode(code)]
	return ok
}

// String returns the documented reason phrase, or "Unknown" for codes outside
// the table.
func (s StatusCode) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Success reports whether code is one of the documented success codes.
// Provided for callers; nothing in the client calls it.
func Success(code int) bool {
	switch StatusCode(code) {
	case StatusOK, StatusCreated, StatusAccepted, StatusNoContent:
		return true
	}
	return false
}
