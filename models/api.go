package models

// Request and response bodies of the remote catalog API. The wire format is
// JSON; list/search endpoints are paginated through opaque cursors.

// ListResponse is one page of a paginated catalog listing.
type ListResponse struct {
	Objects []CatalogObject `json:"objects,omitempty"`
	Cursor  string          `json:"cursor,omitempty"`
	Errors  []APIError      `json:"errors,omitempty"`
}

// SearchRequest asks for catalog objects of the given types modified at or
// after BeginTime (RFC 3339). An empty BeginTime means "everything".
type SearchRequest struct {
	ObjectTypes           []string `json:"object_types"`
	BeginTime             string   `json:"begin_time,omitempty"`
	Cursor                string   `json:"cursor,omitempty"`
	IncludeDeletedObjects bool     `json:"include_deleted_objects,omitempty"`
	Limit                 int      `json:"limit,omitempty"`
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Objects []CatalogObject `json:"objects,omitempty"`
	Cursor  string          `json:"cursor,omitempty"`
	Errors  []APIError      `json:"errors,omitempty"`
}

// RetrieveResponse is the result of fetching a single object, optionally
// with the related objects (variations, images) needed for a version-safe
// write.
type RetrieveResponse struct {
	Object         *CatalogObject  `json:"object,omitempty"`
	RelatedObjects []CatalogObject `json:"related_objects,omitempty"`
	Errors         []APIError      `json:"errors,omitempty"`
}

// BatchRetrieveRequest fetches several objects by id in one round trip.
type BatchRetrieveRequest struct {
	ObjectIDs             []string `json:"object_ids"`
	IncludeRelatedObjects bool     `json:"include_related_objects,omitempty"`
}

// BatchRetrieveResponse carries the requested objects plus their related
// objects.
type BatchRetrieveResponse struct {
	Objects        []CatalogObject `json:"objects,omitempty"`
	RelatedObjects []CatalogObject `json:"related_objects,omitempty"`
	Errors         []APIError      `json:"errors,omitempty"`
}

// UpsertRequest writes a full object graph. Every versioned object in the
// graph must carry its current remote version or the remote rejects the
// whole write with VERSION_MISMATCH. IdempotencyKey makes retries of the
// same logical write safe.
type UpsertRequest struct {
	IdempotencyKey string        `json:"idempotency_key"`
	Object         CatalogObject `json:"object"`
}

// UpsertResponse returns the written object graph with remote-assigned ids
// and fresh versions.
type UpsertResponse struct {
	Object     *CatalogObject `json:"catalog_object,omitempty"`
	IDMappings []IDMapping    `json:"id_mappings,omitempty"`
	Errors     []APIError     `json:"errors,omitempty"`
}

// IDMapping records the remote id assigned to a client-side temporary id
// ("#..." placeholder) during an upsert.
type IDMapping struct {
	ClientObjectID string `json:"client_object_id"`
	ObjectID       string `json:"object_id"`
}

// APIError is one typed error entry of a remote error response.
type APIError struct {
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// Remote error codes this engine reacts to specifically.
const (
	APIErrorCodeVersionMismatch = "VERSION_MISMATCH"
	APIErrorCodeNotFound        = "NOT_FOUND"
	APIErrorCodeUnauthorized    = "UNAUTHORIZED"
)
