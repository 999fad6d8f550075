package model

// CrimeStats maps incident categories to annual counts per 100k residents.
// A map rather than a struct because the demo record carries an extra
// "year" key that state-scoped records never include.
type CrimeStats map[string]int
