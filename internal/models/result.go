package models

// Store result envelopes returned to clients. Field names mirror the
// underlying driver results so the front-end sees the same shapes it
// already consumes.

type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
