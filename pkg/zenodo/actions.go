package zenodo

import (
	"context"
	"net/http"
)

// Publish publishes a deposition. Publishing is irreversible: the deposition
// can no longer be deleted afterward.
//
//	POST /deposit/depositions/:id/actions/publish
func (c *Client) Publish(ctx context.Context, depositionID string) (*Response, error) {
	return c.action(ctx, depositionID, "publish")
}

// Edit unlocks an already submitted deposition for metadata editing.
//
//	POST /deposit/depositions/:id/actions/edit
func (c *Client) Edit(ctx context.Context, depositionID string) (*Response, error) {
	return c.action(ctx, depositionID, "edit")
}

// Discard drops the changes of the current editing session.
//
//	POST /deposit/depositions/:id/actions/discard
func (c *Client) Discard(ctx context.Context, depositionID string) (*Response, error) {
	return c.action(ctx, depositionID, "discard")
}

// NewVersion creates a new draft version of a published deposition.
//
//	POST /deposit/depositions/:id/actions/newversion
func (c *Client) NewVersion(ctx context.Context, depositionID string) (*Response, error) {
	return c.action(ctx, depositionID, "newversion")
}

// action issues a bodyless POST to one of the deposition action endpoints.
// The draft/published lifecycle is enforced entirely server-side; the client
// sends the request even when the transition is known to be invalid.
func (c *Client) action(ctx context.Context, depositionID, name string) (*Response, error) {
	url := c.authURL(depositionPath(depositionID) + "/actions/" + name)
	return c.do(ctx, http.MethodPost, url, nil, nil)
}
