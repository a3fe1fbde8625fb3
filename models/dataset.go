package models

import "time"

// Dataset is one generated batch as handed to the sinks.
type Dataset struct {
	RunID       string
	GeneratedAt time.Time
	Localities  []Locality
	Records     []PropertyRecord
}

// RiskyCount returns how many records satisfy the risk predicate.
func (d Dataset) RiskyCount() int {
	n := 0
	for _, r := range d.Records {
		if r.IsRisky() {
			n++
		}
	}
	return n
}
