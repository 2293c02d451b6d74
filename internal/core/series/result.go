// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

// # Command Results

// Result is the outcome of a command that writes the scalar side of a series.
//
// Warnings carry the failures of best-effort steps. A non-empty list never
// turns a successful write into a failure.
type Result struct {
	ID       int64    `json:"id"`
	Series   *Series  `json:"series"`
	Created  bool     `json:"created"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

// HasWarnings reports whether any best-effort step failed.
func (result *Result) HasWarnings() bool {
	return len(result.Warnings) > 0
}

func (result *Result) warn(message string) {
	result.Warnings = append(result.Warnings, message)
}

// RelationResult is the outcome of a genre or title command.
type RelationResult struct {
	SeriesID int64  `json:"series_id"`
	Applied  bool   `json:"applied"`
	Message  string `json:"message"`
}

// DeleteResult is the outcome of a delete command.
//
// NotFound is a normal negative outcome: deleting an unknown series returns
// a result with NotFound set and a nil error.
type DeleteResult struct {
	ID       int64    `json:"id"`
	Deleted  bool     `json:"deleted"`
	NotFound bool     `json:"not_found,omitempty"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}
