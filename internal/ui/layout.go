package ui

// Terminal size thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops detail.
	LayoutCompactWidth = 100

	// LayoutTwoColumnWidth is the minimum width for two panel columns.
	LayoutTwoColumnWidth = 120

	// MinPanelHeight keeps a panel tall enough for title, chart and stats.
	MinPanelHeight = 7
)
