package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayMode(t *testing.T) {
	tests := []struct {
		input   string
		want    DisplayMode
		wantErr bool
	}{
		{input: "daily", want: DisplayModeDaily},
		{input: " Weekly ", want: DisplayModeWeekly},
		{input: "monthly", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDisplayMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayModeStateMachine(t *testing.T) {
	var mode DisplayMode
	assert.Equal(t, DisplayModeDaily, mode)
	assert.Equal(t, AxisKeyDate, mode.AxisKey())

	mode = mode.Toggle()
	assert.Equal(t, DisplayModeWeekly, mode)
	assert.Equal(t, AxisKeyWeek, mode.AxisKey())
	assert.Equal(t, DisplayModeDaily, mode.Toggle())
}

func TestDisplayModeJSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Mode DisplayMode `json:"mode"`
	}{Mode: DisplayModeWeekly})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"weekly"}`, string(payload))

	var decoded struct {
		Mode DisplayMode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"daily"}`), &decoded))
	assert.Equal(t, DisplayModeDaily, decoded.Mode)
	assert.Error(t, json.Unmarshal([]byte(`{"mode":"hourly"}`), &decoded))
}

func TestSnapshotSelectAndCategory(t *testing.T) {
	snapshot := &SeriesSnapshot{
		Daily:  Series{{Date: "2024-01-01", Week: "W1"}},
		Weekly: Series{{Week: "W1"}, {Week: "W2"}},
	}

	assert.Len(t, snapshot.Select(DisplayModeDaily), 1)
	assert.Len(t, snapshot.Select(DisplayModeWeekly), 2)
	assert.Nil(t, (*SeriesSnapshot)(nil).Select(DisplayModeDaily))

	point := snapshot.Daily[0]
	assert.Equal(t, "2024-01-01", point.Category(DisplayModeDaily.AxisKey()))
	assert.Equal(t, "W1", point.Category(DisplayModeWeekly.AxisKey()))
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatCurrency, FormatFor(SeriesRevenue))
	assert.Equal(t, FormatCurrency, FormatFor(SeriesSpend))
	assert.Equal(t, FormatRatio, FormatFor(SeriesROAS))
	assert.Equal(t, FormatRaw, FormatFor(SeriesID("ctr")))
	assert.Equal(t, "raw", FormatRaw.String())

	value, ok := TimeSeriesPoint{ROAS: 1.5}.Value(SeriesROAS)
	assert.True(t, ok)
	assert.Equal(t, 1.5, value)

	_, ok = TimeSeriesPoint{}.Value(SeriesID("ctr"))
	assert.False(t, ok)
}
