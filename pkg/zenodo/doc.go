// Package zenodo is a thin client for the Zenodo deposition API.
//
// # Overview
//
// The client maps each deposition, file, and workflow-action endpoint to a
// single method. Methods build one authenticated HTTP request (UploadFile
// builds two), issue it, and hand back the raw [Response] without
// interpreting it. The remote service owns all business rules, including the
// publication lifecycle.
//
// # Usage
//
//	client, err := zenodo.New(zenodo.Config{
//	    AccessToken: token,
//	    Sandbox:     true,
//	})
//	if err != nil {
//	    return err
//	}
//
//	resp, err := client.CreateDeposition(ctx)
//	if err != nil {
//	    return err
//	}
//	dep, err := resp.Deposition()
//	if err != nil {
//	    return err
//	}
//
//	id := strconv.Itoa(dep.ID)
//	_, err = client.UploadFile(ctx, id, "results.csv", "/tmp/results.csv")
//
// # Error handling
//
// Methods return an error only for transport failures, request construction
// failures, and (for UploadFile) a local file that cannot be opened. A non-2xx
// response is not an error: it comes back as a [Response] for the caller to
// check against the documented status set (see [Known] and [Success]).
//
// # Testing
//
// The [zenodotest] subpackage runs an in-process fake of the deposition API,
// useful for exercising the full request flow without network access.
//
// [zenodotest]: github.com/silebat/zenodo-go/pkg/zenodo/zenodotest
package zenodo
