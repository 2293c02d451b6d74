package schema

// CoreSeriesTable represents the 'core.series' table
type CoreSeriesTable struct {
	Table         string
	ID            string
	Name          string
	NameKey       string
	ChapterNumber string
	Year          string
	Description   string
	DescriptionEN string
	Qualification string
	DemographyID  string
	Visible       string
	Image         string
	Rank          string
	CreatedAt     string
	UpdatedAt     string
}

// CoreSeries is the schema definition for core.series
var CoreSeries = CoreSeriesTable{
	Table:         "core.series",
	ID:            "id",
	Name:          "name",
	NameKey:       "namekey",
	ChapterNumber: "chapternumber",
	Year:          "year",
	Description:   "description",
	DescriptionEN: "descriptionen",
	Qualification: "qualification",
	DemographyID:  "demographyid",
	Visible:       "visible",
	Image:         "image",
	Rank:          "rank",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// RefreshRankFunction recomputes core.series.rank for the whole catalogue.
const RefreshRankFunction = "core.refresh_series_rank"
