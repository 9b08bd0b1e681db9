package zenodo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const depositionsPath = "deposit/depositions"

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// ListDepositions lists all depositions owned by the authenticated user.
//
//	GET /deposit/depositions
func (c *Client) ListDepositions(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, c.authURL(depositionsPath), nil, nil)
}

// CreateDeposition creates a new empty deposition. The returned resource
// carries the bucket link used for file uploads.
//
//	POST /deposit/depositions
func (c *Client) CreateDeposition(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodPost, c.authURL(depositionsPath), strings.NewReader("{}"), jsonHeaders)
}

// GetDeposition retrieves a single deposition.
//
//	GET /deposit/depositions/:id
func (c *Client) GetDeposition(ctx context.Context, depositionID string) (*Response, error) {
	return c.do(ctx, http.MethodGet, c.authURL(depositionPath(depositionID)), nil, nil)
}

// UpdateDeposition replaces the metadata of an existing deposition.
//
//	PUT /deposit/depositions/:id
func (c *Client) UpdateDeposition(ctx context.Context, depositionID string, metadata DepositionMetadata) (*Response, error) {
	body, err := json.Marshal(depositionUpdateRequest{Metadata: metadata})
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return c.do(ctx, http.MethodPut, c.authURL(depositionPath(depositionID)), bytes.NewReader(body), jsonHeaders)
}

// DeleteDeposition deletes an unpublished deposition. The remote service
// rejects deletion of published depositions; no check happens client-side.
//
//	DELETE /deposit/depositions/:id
func (c *Client) DeleteDeposition(ctx context.Context, depositionID string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, c.authURL(depositionPath(depositionID)), nil, nil)
}

// depositionPath returns the sub-path for a single deposition. The id is
// treated as an opaque token and never validated locally.
func depositionPath(depositionID string) string {
	return depositionsPath + "/" + depositionID
}
