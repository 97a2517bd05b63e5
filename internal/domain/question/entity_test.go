package question

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNew_DropsServerAssignedKeys(t *testing.T) {
	q := New(map[string]any{
		"text":      "hello",
		"user":      "alice",
		"_id":       "caller-id",
		"createdAt": "yesterday",
	})

	assert.Equal(t, map[string]any{"text": "hello", "user": "alice"}, q.Fields)
	assert.True(t, q.ID.IsZero())
	assert.Equal(t, "hello", q.Text())
}

func TestText_NonString(t *testing.T) {
	q := New(map[string]any{"text": 42.0})
	assert.Empty(t, q.Text())
}

func TestMarshalJSON_MergesFields(t *testing.T) {
	id := primitive.NewObjectID()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	q := Question{
		ID:        id,
		CreatedAt: created,
		Fields:    map[string]any{"text": "hello", "tags": []any{"go"}},
	}

	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, id.Hex(), out["_id"])
	assert.Equal(t, "2024-05-01T12:00:00Z", out["createdAt"])
	assert.Equal(t, "hello", out["text"])
	assert.Equal(t, []any{"go"}, out["tags"])
}
