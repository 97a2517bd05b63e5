package question

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldID        = "_id"
	FieldCreatedAt = "createdAt"
	FieldText      = "text"
)

// Question is a community post. Its body is whatever object the caller sent;
// only the identifier and creation time belong to the server.
type Question struct {
	ID        primitive.ObjectID
	CreatedAt time.Time
	Fields    map[string]any
}

// New wraps a caller body. Keys the server assigns itself are dropped.
func New(body map[string]any) *Question {
	fields := make(map[string]any, len(body))
	for k, v := range body {
		if k == FieldID || k == FieldCreatedAt {
			continue
		}
		fields[k] = v
	}
	return &Question{Fields: fields}
}

// Text returns the "text" field when the caller sent one as a string.
func (q Question) Text() string {
	s, _ := q.Fields[FieldText].(string)
	return s
}

func (q Question) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(q.Fields)+2)
	for k, v := range q.Fields {
		out[k] = v
	}
	out[FieldID] = q.ID.Hex()
	out[FieldCreatedAt] = q.CreatedAt.UTC().Format(time.RFC3339Nano)
	return json.Marshal(out)
}
