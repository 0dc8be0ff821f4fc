package domain

// TooltipEntry é uma linha do tooltip
type TooltipEntry struct {
	Series    SeriesID `json:"series"`
	Label     string   `json:"label"`
	Value     float64  `json:"value"`
	Formatted string   `json:"formatted"`
	Format    string   `json:"format"`
}

// Tooltip agrupa as linhas exibidas para um ponto do gráfico
type Tooltip struct {
	Index    int            `json:"index"`
	Category string         `json:"category"`
	Label    string         `json:"label"`
	Entries  []TooltipEntry `json:"entries"`
}
