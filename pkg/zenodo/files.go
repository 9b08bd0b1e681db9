package zenodo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

var uploadHeaders = map[string]string{
	"Content-Type": "application/octet-stream",
	"Accept":       "application/json",
}

// ListFiles lists the files of a deposition.
//
//	GET /deposit/depositions/:id/files
func (c *Client) ListFiles(ctx context.Context, depositionID string) (*Response, error) {
	return c.do(ctx, http.MethodGet, c.authURL(filesPath(depositionID)), nil, nil)
}

// UploadFile streams the file at path into the deposition under targetName.
//
// This is the one two-step operation: the deposition is fetched first to
// resolve its current bucket link, then the content is PUT to
// {bucket}/{targetName}. The local file is opened before any request is
// issued, so an unreadable path fails without touching the network.
//
//	GET /deposit/depositions/:id
//	PUT {links.bucket}/:target_name
func (c *Client) UploadFile(ctx context.Context, depositionID, targetName, path string) (*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()
	return c.Upload(ctx, depositionID, targetName, f)
}

// Upload streams content into the deposition under targetName. Content is
// read exactly once and never buffered in full, so arbitrarily large uploads
// stay at constant memory.
func (c *Client) Upload(ctx context.Context, depositionID, targetName string, content io.Reader) (*Response, error) {
	resp, err := c.GetDeposition(ctx, depositionID)
	if err != nil {
		return nil, fmt.Errorf("resolve bucket: %w", err)
	}

	var resource struct {
		Links struct {
			Bucket string `json:"bucket"`
		} `json:"links"`
	}
	if err := resp.JSON(&resource); err != nil {
		return nil, fmt.Errorf("resolve bucket: %w", err)
	}
	if resource.Links.Bucket == "" {
		return nil, fmt.Errorf("resolve bucket: deposition %s has no bucket link (status %s)", depositionID, resp.Status)
	}

	uploadURL := c.withToken(resource.Links.Bucket + "/" + targetName)
	return c.do(ctx, http.MethodPut, uploadURL, content, uploadHeaders)
}

// SortFiles sets the display order of a deposition's files. The request body
// preserves the input order exactly.
//
//	PUT /deposit/depositions/:id/files
func (c *Client) SortFiles(ctx context.Context, depositionID string, fileIDs []string) (*Response, error) {
	order := make([]fileOrderEntry, 0, len(fileIDs))
	for _, id := range fileIDs {
		order = append(order, fileOrderEntry{ID: id})
	}
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshal file order: %w", err)
	}
	return c.do(ctx, http.MethodPut, c.authURL(filesPath(depositionID)), bytes.NewReader(body), jsonHeaders)
}

// GetFile retrieves a single deposition file resource.
//
//	GET /deposit/depositions/:id/files/:file_id
func (c *Client) GetFile(ctx context.Context, depositionID, fileID string) (*Response, error) {
	return c.do(ctx, http.MethodGet, c.authURL(filePath(depositionID, fileID)), nil, nil)
}

// RenameFile renames an already uploaded file. Replacing content requires
// deleting and re-uploading instead.
//
//	PUT /deposit/depositions/:id/files/:file_id
func (c *Client) RenameFile(ctx context.Context, depositionID, fileID, targetName string) (*Response, error) {
	body, err := json.Marshal(fileRenameRequest{Filename: targetName})
	if err != nil {
		return nil, fmt.Errorf("marshal filename: %w", err)
	}
	return c.do(ctx, http.MethodPut, c.authURL(filePath(depositionID, fileID)), bytes.NewReader(body), jsonHeaders)
}

// DeleteFile deletes a deposition file. The remote service only allows this
// while the deposition is unpublished; the request is issued regardless and
// the server's verdict is returned as-is.
//
//	DELETE /deposit/depositions/:id/files/:file_id
func (c *Client) DeleteFile(ctx context.Context, depositionID, fileID string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, c.authURL(filePath(depositionID, fileID)), nil, nil)
}

func filesPath(depositionID string) string {
	return depositionPath(depositionID) + "/files"
}

func filePath(depositionID, fileID string) string {
	return filesPath(depositionID) + "/" + fileID
}
