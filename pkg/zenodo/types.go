package zenodo

// Deposition is a draft or published record container holding metadata and
// files. The struct covers the fields this library and its CLI consume; the
// raw body on [Response] always has the full server payload.
type Deposition struct {
	ID        int                `json:"id"`
	ConceptID string             `json:"conceptrecid,omitempty"`
	DOI       string             `json:"doi,omitempty"`
	State     string             `json:"state,omitempty"`
	Submitted bool               `json:"submitted"`
	Title     string             `json:"title,omitempty"`
	Created   string             `json:"created,omitempty"`
	Modified  string             `json:"modified,omitempty"`
	Metadata  DepositionMetadata `json:"metadata"`
	Files     []DepositionFile   `json:"files,omitempty"`
	Links     Links              `json:"links"`
}

// DepositionFile is a single file stored under a deposition.
type DepositionFile struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Filesize int64  `json:"filesize"`
	Checksum string `json:"checksum,omitempty"`
	Links    Links  `json:"links"`
}

// Links holds the hypermedia links a resource advertises. Bucket is the
// per-deposition upload location; it can change across versions, which is why
// UploadFile resolves it fresh on every call.
type Links struct {
	Self    string `json:"self,omitempty"`
	HTML    string `json:"html,omitempty"`
	Bucket  string `json:"bucket,omitempty"`
	Files   string `json:"files,omitempty"`
	Publish string `json:"publish,omitempty"`
	Edit    string `json:"edit,omitempty"`
	Discard string `json:"discard,omitempty"`
	Latest  string `json:"latest_draft,omitempty"`
}

// DepositionMetadata is the metadata payload for UpdateDeposition.
// Zero-value fields are omitted from the serialized body.
type DepositionMetadata struct {
	Title           string    `json:"title,omitempty"`
	UploadType      string    `json:"upload_type,omitempty"`
	PublicationType string    `json:"publication_type,omitempty"`
	ImageType       string    `json:"image_type,omitempty"`
	Description     string    `json:"description,omitempty"`
	Creators        []Creator `json:"creators,omitempty"`
	Keywords        []string  `json:"keywords,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	AccessRight     string    `json:"access_right,omitempty"`
	License         string    `json:"license,omitempty"`
	DOI             string    `json:"doi,omitempty"`
	PublicationDate string    `json:"publication_date,omitempty"`
	Version         string    `json:"version,omitempty"`
}

// Creator identifies an author of a deposition.
type Creator struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation,omitempty"`
	ORCID       string `json:"orcid,omitempty"`
}

// depositionUpdateRequest wraps metadata the way the update endpoint expects.
type depositionUpdateRequest struct {
	Metadata DepositionMetadata `json:"metadata"`
}

// fileRenameRequest carries the new filename for RenameFile.
type fileRenameRequest struct {
	Filename string `json:"filename"`
}

// fileOrderEntry is one element of the SortFiles request body. The endpoint
// takes an ordered array of {"id": ...} objects.
type fileOrderEntry struct {
	ID string `json:"id"`
}
