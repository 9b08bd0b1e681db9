package zenodo_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/silebat/zenodo-go/pkg/zenodo"
	"github.com/silebat/zenodo-go/pkg/zenodo/zenodotest"
)

// recordedRequest captures what the client actually sent.
type recordedRequest struct {
	Method      string
	Path        string
	Query       string
	ContentType string
	Body        []byte
}

// recordingServer returns a client pointed at a server that records every
// request and answers with an empty JSON object.
func recordingServer(t *testing.T) (*zenodo.Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{}"))
	}))
	t.Cleanup(server.Close)

	client, err := zenodo.New(zenodo.Config{AccessToken: "tok", BaseURL: server.URL + "/api/"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client, &requests
}

func TestDepositionRequests(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func(c *zenodo.Client) (*zenodo.Response, error)
		wantMethod string
		wantPath   string
		wantBody   string
	}{
		{
			name:       "list",
			call:       func(c *zenodo.Client) (*zenodo.Response, error) { return c.ListDepositions(ctx) },
			wantMethod: http.MethodGet,
			wantPath:   "/api/deposit/depositions",
		},
		{
			name:       "create",
			call:       func(c *zenodo.Client) (*zenodo.Response, error) { return c.CreateDeposition(ctx) },
			wantMethod: http.MethodPost,
			wantPath:   "/api/deposit/depositions",
			wantBody:   "{}",
		},
		{
			name:       "get",
			call:       func(c *zenodo.Client) (*zenodo.Response, error) { return c.GetDeposition(ctx, "42") },
			wantMethod: http.MethodGet,
			wantPath:   "/api/deposit/depositions/42",
		},
		{
			name:       "delete",
			call:       func(c *zenodo.Client) (*zenodo.Response, error) { return c.DeleteDeposition(ctx, "42") },
			wantMethod: http.MethodDelete,
			wantPath:   "/api/deposit/depositions/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, requests := recordingServer(t)
			if _, err := tt.call(client); err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			if len(*requests) != 1 {
				t.Fatalf("expected exactly 1 request, got %d", len(*requests))
			}
			req := (*requests)[0]
			if req.Method != tt.wantMethod {
				t.Errorf("method = %s, want %s", req.Method, tt.wantMethod)
			}
			if req.Path != tt.wantPath {
				t.Errorf("path = %s, want %s", req.Path, tt.wantPath)
			}
			if tt.wantBody != "" && string(req.Body) != tt.wantBody {
				t.Errorf("body = %q, want %q", req.Body, tt.wantBody)
			}
		})
	}
}

func TestUpdateDepositionBody(t *testing.T) {
	client, requests := recordingServer(t)

	metadata := zenodo.DepositionMetadata{
		Title:      "Survey data",
		UploadType: "dataset",
		Creators:   []zenodo.Creator{{Name: "Doe, Jane", Affiliation: "BfR"}},
	}
	if _, err := client.UpdateDeposition(context.Background(), "42", metadata); err != nil {
		t.Fatalf("UpdateDeposition failed: %v", err)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPut {
		t.Errorf("method = %s, want PUT", req.Method)
	}
	if req.ContentType != "application/json" {
		t.Errorf("content type = %q", req.ContentType)
	}

	var sent struct {
		Metadata zenodo.DepositionMetadata `json:"metadata"`
	}
	if err := json.Unmarshal(req.Body, &sent); err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(sent.Metadata, metadata) {
		t.Errorf("sent metadata %+v, want %+v", sent.Metadata, metadata)
	}
}

func TestEveryRequestCarriesToken(t *testing.T) {
	client, requests := recordingServer(t)
	ctx := context.Background()

	client.ListDepositions(ctx)
	client.CreateDeposition(ctx)
	client.GetDeposition(ctx, "1")
	client.DeleteDeposition(ctx, "1")
	client.ListFiles(ctx, "1")
	client.GetFile(ctx, "1", "f")
	client.DeleteFile(ctx, "1", "f")
	client.Publish(ctx, "1")
	client.Edit(ctx, "1")
	client.Discard(ctx, "1")
	client.NewVersion(ctx, "1")

	for _, req := range *requests {
		if req.Query != "access_token=tok" {
			t.Errorf("%s %s: query = %q, want access_token=tok", req.Method, req.Path, req.Query)
		}
	}
}

func TestGetThenUpdateIsIdempotent(t *testing.T) {
	server := zenodotest.NewServer("tok")
	defer server.Close()

	client, err := zenodo.New(zenodo.Config{AccessToken: "tok", BaseURL: server.BaseURL()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := context.Background()
	id := server.CreateDeposition()

	metadata := zenodo.DepositionMetadata{Title: "Stable title", UploadType: "dataset"}
	if _, err := client.UpdateDeposition(ctx, id, metadata); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	// Re-reading and re-applying the same metadata must not change the
	// resource state.
	for i := 0; i < 3; i++ {
		resp, err := client.GetDeposition(ctx, id)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		dep, err := resp.Deposition()
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if _, err := client.UpdateDeposition(ctx, id, dep.Metadata); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		after, _ := server.Deposition(id)
		if after.Metadata.Title != "Stable title" {
			t.Fatalf("round %d: title drifted to %q", i, after.Metadata.Title)
		}
		if !reflect.DeepEqual(after.Metadata, dep.Metadata) {
			t.Fatalf("round %d: metadata drifted: %+v vs %+v", i, after.Metadata, dep.Metadata)
		}
	}
}
