package schema

// SeriesGenreTable represents the 'core.seriesgenre' table
type SeriesGenreTable struct {
	Table    string
	SeriesID string
	GenreID  string
}

// SeriesGenre is the schema definition for core.seriesgenre
var SeriesGenre = SeriesGenreTable{
	Table:    "core.seriesgenre",
	SeriesID: "seriesid",
	GenreID:  "genreid",
}
