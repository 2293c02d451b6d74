package schema

// RefDemographyTable represents the 'core.demography' table
type RefDemographyTable struct {
	Table string
	ID    string
	Name  string
}

// RefDemography is the schema definition for core.demography
var RefDemography = RefDemographyTable{
	Table: "core.demography",
	ID:    "id",
	Name:  "name",
}
