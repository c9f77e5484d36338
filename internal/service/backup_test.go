package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

func TestBackupRoundTrip(t *testing.T) {
	start := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	end := start.Add(9 * time.Hour)
	sessions := []internal.WearSession{
		{
			ID:        "abc",
			Date:      "2026-03-14",
			StartTime: start,
			EndTime:   &end,
			Duration:  9 * 3600,
			Comfort:   8,
			Notes:     "long day",
			Fogging:   true,
		},
	}

	data, err := ExportBackup(sessions, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	restored, err := ImportBackup(data)
	require.NoError(t, err)
	require.Len(t, restored, 1)

	got := restored[0]
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "2026-03-14", got.Date)
	assert.True(t, got.StartTime.Equal(start))
	require.NotNil(t, got.EndTime)
	assert.True(t, got.EndTime.Equal(end))
	assert.EqualValues(t, 9*3600, got.Duration)

	// Descriptive fields never make it into a backup.
	assert.Equal(t, 0, got.Comfort)
	assert.Empty(t, got.Notes)
	assert.False(t, got.Fogging)
}

func TestExportBackupEnvelope(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	data, err := ExportBackup(nil, now)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "sessions")
	assert.JSONEq(t, `"1.0"`, string(doc["version"]))
	assert.JSONEq(t, `"2026-03-15T12:00:00Z"`, string(doc["exportDate"]))
}

func TestExportBackupCamelCaseKeys(t *testing.T) {
	start := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	sessions := []internal.WearSession{{ID: "x", Date: "2026-03-14", StartTime: start}}
	data, err := ExportBackup(sessions, start)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"startTime"`)
	assert.Contains(t, string(data), `"endTime"`)
	assert.NotContains(t, string(data), `"start_time"`)
}

func TestImportBackupInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"json array", `[1, 2, 3]`},
		{"missing sessions", `{"version": "1.0"}`},
		{"sessions not a list", `{"sessions": {"id": "x"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportBackup([]byte(tt.data))
			assert.ErrorIs(t, err, internal.ErrInvalidFormat)
		})
	}
}

func TestImportBackupEmptySessions(t *testing.T) {
	sessions, err := ImportBackup([]byte(`{"sessions": [], "version": "1.0"}`))
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestImportBackupIgnoresUnknownFields(t *testing.T) {
	doc := `{
		"sessions": [{"id": "a", "date": "2026-03-14", "startTime": "2026-03-14T08:00:00Z", "endTime": null, "duration": 0, "extra": true}],
		"exportDate": "2026-03-15T12:00:00Z",
		"version": "1.0",
		"futureField": {}
	}`
	sessions, err := ImportBackup([]byte(doc))
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "a", sessions[0].ID)
	assert.Nil(t, sessions[0].EndTime)
}
