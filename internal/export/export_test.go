package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mushroom-segmenter/internal/segment"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	circles := []segment.Circle{
		{X: 120, Y: 85, Radius1: 40.6, Radius2: 38.2},
		{X: 300, Y: 210, Radius1: 22.0, Radius2: 19.5},
	}

	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteCSV(path, circles))

	want := [][]string{
		{"X", "Y", "Radius_1", "Radius_2"},
		{"120", "85", "41", "38"},
		{"300", "210", "22", "20"},
	}
	if diff := cmp.Diff(want, readCSV(t, path)); diff != "" {
		t.Errorf("CSV mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteCSV(path, nil))

	records := readCSV(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"X", "Y", "Radius_1", "Radius_2"}, records[0])
}

func TestWriteCSVCreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs", "today", "results.csv")
	require.NoError(t, WriteCSV(path, []segment.Circle{{X: 1, Y: 2, Radius1: 3, Radius2: 4}}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestNewResultNilCircles(t *testing.T) {
	t.Parallel()

	result := NewResult(nil, nil)
	assert.Equal(t, 0, result.Count)
	require.NotNil(t, result.Circles)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"circles":[]`)
}

func TestNewMetadata(t *testing.T) {
	t.Parallel()

	circles := []segment.Circle{
		{X: 10, Y: 20, Radius1: 15, Radius2: 12},
		{X: 50, Y: 60, Radius1: 21, Radius2: 18},
	}

	meta := NewMetadata("caps.jpg", segment.DefaultSettings(), circles)

	_, err := uuid.Parse(meta.RunID)
	require.NoError(t, err)
	assert.Equal(t, "caps.jpg", meta.SourceImage)
	assert.Equal(t, "mushroom-segmenter", meta.Tool)
	assert.NotEmpty(t, meta.Version)
	assert.False(t, meta.Timestamp.IsZero())
	require.NotNil(t, meta.Summary)
}

func TestNewMetadataUniqueRunIDs(t *testing.T) {
	t.Parallel()

	first := NewMetadata("a.png", segment.DefaultSettings(), nil)
	second := NewMetadata("a.png", segment.DefaultSettings(), nil)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	circles := []segment.Circle{
		{Radius1: 3, Radius2: 10},
		{Radius1: 5, Radius2: 20},
		{Radius1: 7, Radius2: 30},
	}

	summary := Summarize(circles)
	require.NotNil(t, summary)

	assert.InDelta(t, 5, summary.Radius1.Mean, 1e-9)
	assert.InDelta(t, 2, summary.Radius1.StdDev, 1e-9)
	assert.InDelta(t, 3, summary.Radius1.Min, 1e-9)
	assert.InDelta(t, 7, summary.Radius1.Max, 1e-9)

	assert.InDelta(t, 20, summary.Radius2.Mean, 1e-9)
	assert.InDelta(t, 10, summary.Radius2.StdDev, 1e-9)
}

func TestSummarizeSingleCircle(t *testing.T) {
	t.Parallel()

	summary := Summarize([]segment.Circle{{Radius1: 12, Radius2: 9}})
	require.NotNil(t, summary)
	assert.InDelta(t, 12, summary.Radius1.Mean, 1e-9)
	assert.Zero(t, summary.Radius1.StdDev)
	assert.Zero(t, summary.Radius2.StdDev)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Summarize(nil))
	assert.Nil(t, Summarize([]segment.Circle{}))
}

func TestWriteJSONRoundTrip(t *testing.T) {
	t.Parallel()

	circles := []segment.Circle{
		{X: 42, Y: 17, Radius1: 25.5, Radius2: 23.1},
	}
	result := NewResult(circles, NewMetadata("field.png", segment.DefaultSettings(), circles))

	path := filepath.Join(t.TempDir(), "out", "results.json")
	require.NoError(t, WriteJSON(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Result
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, 1, loaded.Count)
	if diff := cmp.Diff(circles, loaded.Circles); diff != "" {
		t.Errorf("circles mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, loaded.Metadata)
	assert.Equal(t, result.Metadata.RunID, loaded.Metadata.RunID)
}
