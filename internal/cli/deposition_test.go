package cli

import (
	"net/http"
	"strings"
	"testing"

	"github.com/silebat/zenodo-go/pkg/zenodo"
)

func TestParseCreator(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want zenodo.Creator
	}{
		{
			name: "name only",
			raw:  "Doe, Jane",
			want: zenodo.Creator{Name: "Doe, Jane"},
		},
		{
			name: "name and affiliation",
			raw:  "Doe, Jane;BfR",
			want: zenodo.Creator{Name: "Doe, Jane", Affiliation: "BfR"},
		},
		{
			name: "full triple",
			raw:  "Doe, Jane;BfR;0000-0002-1825-0097",
			want: zenodo.Creator{Name: "Doe, Jane", Affiliation: "BfR", ORCID: "0000-0002-1825-0097"},
		},
		{
			name: "whitespace trimmed",
			raw:  " Doe, Jane ; BfR ; 0000-0002-1825-0097 ",
			want: zenodo.Creator{Name: "Doe, Jane", Affiliation: "BfR", ORCID: "0000-0002-1825-0097"},
		},
		{
			name: "empty affiliation kept empty",
			raw:  "Doe, Jane;;0000-0002-1825-0097",
			want: zenodo.Creator{Name: "Doe, Jane", ORCID: "0000-0002-1825-0097"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseCreator(tt.raw); got != tt.want {
				t.Errorf("parseCreator(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResponseError(t *testing.T) {
	resp := &zenodo.Response{
		StatusCode: http.StatusForbidden,
		Status:     "403 FORBIDDEN",
		Body:       []byte(`{"message": "Deleting a published deposition is not allowed."}`),
	}

	err := responseError(resp)
	if err == nil {
		t.Fatal("responseError returned nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "403 Forbidden") {
		t.Errorf("error %q should name the status", msg)
	}
	if !strings.Contains(msg, "not allowed") {
		t.Errorf("error %q should carry the response body", msg)
	}
}

func TestResponseErrorUnknownStatus(t *testing.T) {
	resp := &zenodo.Response{
		StatusCode: 502,
		Status:     "502 Bad Gateway",
	}

	err := responseError(resp)
	if !strings.Contains(err.Error(), "502 Bad Gateway") {
		t.Errorf("error %q should fall back to the raw status line", err.Error())
	}
}

func TestOrDash(t *testing.T) {
	if got := orDash(""); got != "-" {
		t.Errorf("orDash(\"\") = %q", got)
	}
	if got := orDash("title"); got != "title" {
		t.Errorf("orDash(\"title\") = %q", got)
	}
}
