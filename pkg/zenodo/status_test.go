package zenodo_test

import (
	"testing"

	"github.com/silebat/zenodo-go/pkg/zenodo"
)

func TestKnownStatusCodes(t *testing.T) {
	known := []int{200, 201, 202, 204, 400, 401, 403, 404, 405, 409, 413, 415, 429, 500}
	for _, code := range known {
		if !zenodo.Known(code) {
			t.Errorf("Known(%d) = false, want true", code)
		}
	}

	for _, code := range []int{100, 301, 302, 418, 502, 503} {
		if zenodo.Known(code) {
			t.Errorf("Known(%d) = true, want false", code)
		}
	}
}

func TestSuccess(t *testing.T) {
	for _, code := range []int{200, 201, 202, 204} {
		if !zenodo.Success(code) {
			t.Errorf("Success(%d) = false", code)
		}
	}
	for _, code := range []int{400, 401, 403, 404, 429, 500} {
		if zenodo.Success(code) {
			t.Errorf("Success(%d) = true", code)
		}
	}
}

func TestStatusCodeString(t *testing.T) {
	tests := []struct {
		code zenodo.StatusCode
		want string
	}{
		{zenodo.StatusOK, "OK"},
		{zenodo.StatusPayloadTooLarge, "Payload Too Large"},
		{zenodo.StatusTooManyRequests, "Too Many Requests"},
		{zenodo.StatusCode(999), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("StatusCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
