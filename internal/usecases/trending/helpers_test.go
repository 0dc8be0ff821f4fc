package trending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Chart: config.Chart{
			Locale:         "en-US",
			CurrencyCode:   "TWD",
			CurrencySymbol: "$",
			DateLayout:     "1/2",
			ROASMax:        1.5,
		},
		Labels: config.Labels{
			Revenue: "營收",
			Spend:   "廣告花費",
			ROAS:    "ROAS",
			Daily:   "日",
			Weekly:  "週",
		},
	}
}

func newTestFormatter(t *testing.T) *Formatter {
	t.Helper()
	formatter, err := NewFormatterFromConfig(testConfig())
	require.NoError(t, err)
	return formatter
}

func testSnapshot() *domain.SeriesSnapshot {
	return &domain.SeriesSnapshot{
		Daily: domain.Series{
			{Date: "2024-01-01", Revenue: 10000, Spend: 2000, ROAS: 1.5},
			{Date: "2024-01-02", Revenue: 12000, Spend: 3000, ROAS: 1.2345},
		},
		Weekly: domain.Series{
			{Week: "W1", Revenue: 70000, Spend: 45000, ROAS: 1.1},
		},
		Source:   "test",
		LoadedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
}
