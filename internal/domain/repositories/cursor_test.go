package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
)

func TestCursorRoundTrip(t *testing.T) {
	pathway := &entities.ClinicalPathway{ID: "pw-1", Name: "Hypertension Management"}

	cursor := repositories.EncodeCursor(pathway)
	name, id, err := repositories.DecodeCursor(cursor)

	require.NoError(t, err)
	assert.Equal(t, "Hypertension Management", name)
	assert.Equal(t, "pw-1", id)
}

func TestCursorRoundTripWithSeparatorInName(t *testing.T) {
	pathway := &entities.ClinicalPathway{ID: "pw-2", Name: "Sepsis | Adult"}

	cursor := repositories.EncodeCursor(pathway)
	name, id, err := repositories.DecodeCursor(cursor)

	require.NoError(t, err)
	assert.Equal(t, "Sepsis | Adult", name)
	assert.Equal(t, "pw-2", id)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, _, err := repositories.DecodeCursor("not base64!!!")
	assert.Error(t, err)

	// valid base64 but no separator
	_, _, err = repositories.DecodeCursor("aGVsbG8=")
	assert.Error(t, err)
}
