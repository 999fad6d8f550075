package georegion

import "safety-hub-go/pkg/model"

// stateStats holds the mock per-state incident rates served by /api/crime.
// Static reference data, never mutated after init.
var stateStats = map[string]model.CrimeStats{
	"NY": {"homicide": 5, "robbery": 120, "aggravated_assault": 180, "burglary": 280, "larceny": 1200, "motor_vehicle_theft": 150, "violent_crime": 305, "property_crime": 1630},
	"CA": {"homicide": 4, "robbery": 95, "aggravated_assault": 220, "burglary": 320, "larceny": 1400, "motor_vehicle_theft": 280, "violent_crime": 319, "property_crime": 2000},
	"TX": {"homicide": 6, "robbery": 110, "aggravated_assault": 250, "burglary": 350, "larceny": 1100, "motor_vehicle_theft": 200, "violent_crime": 366, "property_crime": 1650},
	"FL": {"homicide": 7, "robbery": 130, "aggravated_assault": 200, "burglary": 300, "larceny": 1000, "motor_vehicle_theft": 180, "violent_crime": 337, "property_crime": 1480},
	"AZ": {"homicide": 8, "robbery": 140, "aggravated_assault": 280, "burglary": 400, "larceny": 900, "motor_vehicle_theft": 250, "violent_crime": 428, "property_crime": 1550},
	"IL": {"homicide": 9, "robbery": 150, "aggravated_assault": 300, "burglary": 450, "larceny": 800, "motor_vehicle_theft": 220, "violent_crime": 459, "property_crime": 1470},
	"PA": {"homicide": 5, "robbery": 100, "aggravated_assault": 180, "burglary": 250, "larceny": 700, "motor_vehicle_theft": 150, "violent_crime": 285, "property_crime": 1100},
	"OH": {"homicide": 6, "robbery": 110, "aggravated_assault": 200, "burglary": 280, "larceny": 750, "motor_vehicle_theft": 160, "violent_crime": 316, "property_crime": 1190},
	"GA": {"homicide": 7, "robbery": 120, "aggravated_assault": 220, "burglary": 320, "larceny": 850, "motor_vehicle_theft": 180, "violent_crime": 347, "property_crime": 1350},
	"NC": {"homicide": 6, "robbery": 105, "aggravated_assault": 190, "burglary": 270, "larceny": 720, "motor_vehicle_theft": 140, "violent_crime": 301, "property_crime": 1130},
	"MI": {"homicide": 8, "robbery": 125, "aggravated_assault": 240, "burglary": 350, "larceny": 780, "motor_vehicle_theft": 200, "violent_crime": 373, "property_crime": 1330},
	"NJ": {"homicide": 4, "robbery": 90, "aggravated_assault": 160, "burglary": 220, "larceny": 650, "motor_vehicle_theft": 120, "violent_crime": 254, "property_crime": 990},
	"VA": {"homicide": 5, "robbery": 95, "aggravated_assault": 170, "burglary": 240, "larceny": 680, "motor_vehicle_theft": 130, "violent_crime": 270, "property_crime": 1050},
	"WA": {"homicide": 4, "robbery": 85, "aggravated_assault": 150, "burglary": 200, "larceny": 600, "motor_vehicle_theft": 110, "violent_crime": 239, "property_crime": 910},
	"MA": {"homicide": 3, "robbery": 80, "aggravated_assault": 140, "burglary": 180, "larceny": 550, "motor_vehicle_theft": 100, "violent_crime": 223, "property_crime": 830},
	"TN": {"homicide": 7, "robbery": 115, "aggravated_assault": 210, "burglary": 290, "larceny": 760, "motor_vehicle_theft": 170, "violent_crime": 332, "property_crime": 1220},
	"IN": {"homicide": 6, "robbery": 100, "aggravated_assault": 180, "burglary": 260, "larceny": 700, "motor_vehicle_theft": 150, "violent_crime": 286, "property_crime": 1110},
	"MO": {"homicide": 8, "robbery": 130, "aggravated_assault": 250, "burglary": 340, "larceny": 820, "motor_vehicle_theft": 190, "violent_crime": 388, "property_crime": 1350},
	"MD": {"homicide": 9, "robbery": 140, "aggravated_assault": 270, "burglary": 380, "larceny": 900, "motor_vehicle_theft": 210, "violent_crime": 419, "property_crime": 1490},
	"WI": {"homicide": 5, "robbery": 90, "aggravated_assault": 160, "burglary": 220, "larceny": 620, "motor_vehicle_theft": 120, "violent_crime": 255, "property_crime": 960},
	"CO": {"homicide": 4, "robbery": 85, "aggravated_assault": 150, "burglary": 200, "larceny": 580, "motor_vehicle_theft": 110, "violent_crime": 239, "property_crime": 890},
	"MN": {"homicide": 3, "robbery": 75, "aggravated_assault": 130, "burglary": 180, "larceny": 520, "motor_vehicle_theft": 100, "violent_crime": 208, "property_crime": 800},
	"SC": {"homicide": 8, "robbery": 125, "aggravated_assault": 230, "burglary": 320, "larceny": 800, "motor_vehicle_theft": 180, "violent_crime": 363, "property_crime": 1300},
	"AL": {"homicide": 9, "robbery": 135, "aggravated_assault": 260, "burglary": 360, "larceny": 850, "motor_vehicle_theft": 200, "violent_crime": 404, "property_crime": 1420},
	"LA": {"homicide": 12, "robbery": 160, "aggravated_assault": 320, "burglary": 420, "larceny": 950, "motor_vehicle_theft": 250, "violent_crime": 492, "property_crime": 1620},
	"KY": {"homicide": 6, "robbery": 105, "aggravated_assault": 190, "burglary": 270, "larceny": 720, "motor_vehicle_theft": 150, "violent_crime": 301, "property_crime": 1140},
	"OR": {"homicide": 4, "robbery": 80, "aggravated_assault": 140, "burglary": 190, "larceny": 560, "motor_vehicle_theft": 110, "violent_crime": 224, "property_crime": 860},
	"OK": {"homicide": 7, "robbery": 115, "aggravated_assault": 220, "burglary": 300, "larceny": 750, "motor_vehicle_theft": 170, "violent_crime": 342, "property_crime": 1220},
	"CT": {"homicide": 3, "robbery": 70, "aggravated_assault": 120, "burglary": 160, "larceny": 480, "motor_vehicle_theft": 90, "violent_crime": 193, "property_crime": 730},
	"UT": {"homicide": 2, "robbery": 60, "aggravated_assault": 100, "burglary": 140, "larceny": 400, "motor_vehicle_theft": 80, "violent_crime": 162, "property_crime": 620},
	"IA": {"homicide": 2, "robbery": 55, "aggravated_assault": 90, "burglary": 120, "larceny": 350, "motor_vehicle_theft": 70, "violent_crime": 147, "property_crime": 540},
	"NV": {"homicide": 6, "robbery": 110, "aggravated_assault": 200, "burglary": 280, "larceny": 700, "motor_vehicle_theft": 160, "violent_crime": 316, "property_crime": 1140},
	"AR": {"homicide": 8, "robbery": 125, "aggravated_assault": 240, "burglary": 330, "larceny": 780, "motor_vehicle_theft": 180, "violent_crime": 373, "property_crime": 1290},
	"MS": {"homicide": 10, "robbery": 145, "aggravated_assault": 280, "burglary": 380, "larceny": 900, "motor_vehicle_theft": 220, "violent_crime": 435, "property_crime": 1500},
	"KS": {"homicide": 5, "robbery": 90, "aggravated_assault": 160, "burglary": 220, "larceny": 620, "motor_vehicle_theft": 130, "violent_crime": 255, "property_crime": 970},
	"NM": {"homicide": 8, "robbery": 130, "aggravated_assault": 250, "burglary": 340, "larceny": 800, "motor_vehicle_theft": 190, "violent_crime": 388, "property_crime": 1330},
	"NE": {"homicide": 3, "robbery": 65, "aggravated_assault": 110, "burglary": 150, "larceny": 420, "motor_vehicle_theft": 90, "violent_crime": 178, "property_crime": 660},
	"WV": {"homicide": 6, "robbery": 100, "aggravated_assault": 180, "burglary": 250, "larceny": 680, "motor_vehicle_theft": 140, "violent_crime": 286, "property_crime": 1070},
	"ID": {"homicide": 2, "robbery": 50, "aggravated_assault": 80, "burglary": 110, "larceny": 320, "motor_vehicle_theft": 60, "violent_crime": 132, "property_crime": 490},
	"HI": {"homicide": 2, "robbery": 45, "aggravated_assault": 70, "burglary": 100, "larceny": 280, "motor_vehicle_theft": 50, "violent_crime": 117, "property_crime": 430},
	"NH": {"homicide": 1, "robbery": 40, "aggravated_assault": 60, "burglary": 80, "larceny": 240, "motor_vehicle_theft": 40, "violent_crime": 101, "property_crime": 360},
	"ME": {"homicide": 1, "robbery": 35, "aggravated_assault": 50, "burglary": 70, "larceny": 200, "motor_vehicle_theft": 35, "violent_crime": 86, "property_crime": 305},
	"MT": {"homicide": 2, "robbery": 45, "aggravated_assault": 70, "burglary": 90, "larceny": 260, "motor_vehicle_theft": 50, "violent_crime": 117, "property_crime": 400},
	"RI": {"homicide": 2, "robbery": 50, "aggravated_assault": 80, "burglary": 100, "larceny": 300, "motor_vehicle_theft": 60, "violent_crime": 132, "property_crime": 460},
	"DE": {"homicide": 4, "robbery": 70, "aggravated_assault": 120, "burglary": 160, "larceny": 480, "motor_vehicle_theft": 100, "violent_crime": 194, "property_crime": 740},
	"SD": {"homicide": 2, "robbery": 40, "aggravated_assault": 60, "burglary": 80, "larceny": 220, "motor_vehicle_theft": 40, "violent_crime": 102, "property_crime": 340},
	"ND": {"homicide": 1, "robbery": 30, "aggravated_assault": 40, "burglary": 60, "larceny": 160, "motor_vehicle_theft": 30, "violent_crime": 71, "property_crime": 250},
	"AK": {"homicide": 4, "robbery": 60, "aggravated_assault": 100, "burglary": 120, "larceny": 360, "motor_vehicle_theft": 80, "violent_crime": 164, "property_crime": 560},
	"VT": {"homicide": 1, "robbery": 25, "aggravated_assault": 35, "burglary": 50, "larceny": 140, "motor_vehicle_theft": 25, "violent_crime": 61, "property_crime": 215},
	"WY": {"homicide": 1, "robbery": 20, "aggravated_assault": 30, "burglary": 40, "larceny": 120, "motor_vehicle_theft": 20, "violent_crime": 51, "property_crime": 180},
}

// defaultStats is served for a resolved state missing from the table.
var defaultStats = model.CrimeStats{
	"homicide": 5, "robbery": 100, "aggravated_assault": 180, "burglary": 250,
	"larceny": 700, "motor_vehicle_theft": 150, "violent_crime": 285, "property_crime": 1100,
}

// demoStats is the generic record served when no state resolves at all.
// Unlike state records it carries a "year" key.
var demoStats = model.CrimeStats{
	"homicide":            3,
	"robbery":             55,
	"aggravated_assault":  210,
	"burglary":            230,
	"larceny":             900,
	"motor_vehicle_theft": 220,
	"violent_crime":       420,
	"property_crime":      1350,
	"year":                2023,
}

// StatsFor returns the statistics record for a state code, falling back to
// the generic record for codes without an entry. Callers must not mutate
// the result.
func StatsFor(code string) model.CrimeStats {
	if stats, ok := stateStats[code]; ok {
		return stats
	}
	return defaultStats
}

// DemoStats returns the demo record used when no state resolves.
func DemoStats() model.CrimeStats {
	return demoStats
}
