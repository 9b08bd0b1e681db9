package zenodo

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the raw outcome of a single API request.
//
// The client hands it back verbatim: status code, headers, and the fully
// drained body. No status interpretation happens client-side; checking the
// code against [Known] and decoding the body are the caller's job.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// Deposition decodes the body as a deposition resource.
func (r *Response) Deposition() (*Deposition, error) {
	var d Deposition
	if err := r.JSON(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Depositions decodes the body as a list of deposition resources.
func (r *Response) Depositions() ([]Deposition, error) {
	var ds []Deposition
	if err := r.JSON(&ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// File decodes the body as a deposition file resource.
func (r *Response) File() (*DepositionFile, error) {
	var f DepositionFile
	if err := r.JSON(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Files decodes the body as a list of deposition file resources.
func (r *Response) Files() ([]DepositionFile, error) {
	var fs []DepositionFile
	if err := r.JSON(&fs); err != nil {
		return nil, err
	}
	return fs, nil
}
