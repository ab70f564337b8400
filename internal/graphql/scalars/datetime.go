package scalars

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/99designs/gqlgen/graphql"
)

// MarshalDateTime marshals time.Time to GraphQL DateTime scalar.
// Timestamps are normalized to UTC so clients see a stable representation
// regardless of which instance served the request.
func MarshalDateTime(t time.Time) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, strconv.Quote(t.UTC().Format(time.RFC3339)))
	})
}

// UnmarshalDateTime unmarshals GraphQL DateTime scalar to time.Time
func UnmarshalDateTime(v interface{}) (time.Time, error) {
	switch value := v.(type) {
	case string:
		return time.Parse(time.RFC3339, value)
	case time.Time:
		return value, nil
	default:
		return time.Time{}, fmt.Errorf("unable to parse DateTime from %T", v)
	}
}
