package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEntryToken(t *testing.T) {
	entryDate := time.Date(2023, 6, 17, 11, 0, 0, 0, time.UTC)
	createdAt := time.Date(2023, 6, 17, 11, 0, 4, 123456789, time.UTC)

	token := EncodeEntryToken(entryDate, createdAt, "a5a0c1c4-pair")
	assert.NotEmpty(t, token, "Token should not be empty")

	gotDate, gotCreated, gotID, err := DecodeEntryToken(token)
	require.NoError(t, err)
	assert.True(t, entryDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
	assert.Equal(t, "a5a0c1c4-pair", gotID)
}

func TestDecodeEntryTokenError(t *testing.T) {
	_, _, _, err := DecodeEntryToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	missingID := base64.StdEncoding.EncodeToString([]byte("2023-06-17T11:00:00Z|2023-06-17T11:00:00Z"))
	_, _, _, err = DecodeEntryToken(missingID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.StdEncoding.EncodeToString([]byte("notadate|2023-06-17T11:00:00Z|id"))
	_, _, _, err = DecodeEntryToken(badDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry date parse")

	badCreated := base64.StdEncoding.EncodeToString([]byte("2023-06-17T11:00:00Z|later|id"))
	_, _, _, err = DecodeEntryToken(badCreated)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}
