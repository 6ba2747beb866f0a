package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// decodeDocument converts a raw driver document into the domain read
// model: the _id field becomes the string identifier and every other
// field is kept, with driver types normalized (DateTime to time.Time,
// ObjectID to hex, arrays and nested documents recursively).
func decodeDocument(m bson.M) domain.Document {
	doc := domain.Document{
		Fields: make(map[string]any, len(m)),
	}

	for key, value := range m {
		if key == "_id" {
			doc.ID = idString(value)
			continue
		}

		doc.Fields[key] = normalize(value)
	}

	return doc
}

// idString renders a storage identifier as a string regardless of its
// underlying BSON type.
func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(v)
	}
}

// normalize converts driver-specific values to plain Go values. Timestamps
// stay typed as time.Time; the serializer renders them as ISO-8601.
func normalize(v any) any {
	switch val := v.(type) {
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.ObjectID:
		return val.Hex()
	case primitive.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}

		return out
	case bson.M:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}

		return out
	default:
		return v
	}
}
