package schema

// CoreSeriesTitleTable represents the 'core.seriestitle' table
type CoreSeriesTitleTable struct {
	Table    string
	ID       string
	SeriesID string
	Name     string
}

// CoreSeriesTitle is the schema definition for core.seriestitle
var CoreSeriesTitle = CoreSeriesTitleTable{
	Table:    "core.seriestitle",
	ID:       "id",
	SeriesID: "seriesid",
	Name:     "name",
}
