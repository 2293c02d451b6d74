// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package genre serves the read-only reference rows that series point at:
// genres for the genre set and demographies for demography_id.
package genre

// Genre is a catalogue genre assignable to a series.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Demography is the target audience referenced by series.demography_id.
type Demography struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
