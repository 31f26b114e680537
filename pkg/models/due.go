package models

// DueCounts is the server's due count, keyed by part then style
type DueCounts map[string]map[string]int

// Sum totals every part and style
func (d DueCounts) Sum() int {
	total := 0
	for _, styles := range d {
		for _, n := range styles {
			total += n
		}
	}
	return total
}
