// Package safety holds the hardcoded emergency-guidance reference data.
package safety

import "safety-hub-go/pkg/model"

// protocols is minimal, general-purpose emergency guidance. Static
// reference data, never mutated at runtime.
var protocols = []model.SafetyProtocol{
	{
		Type:  "tornado",
		Title: "Tornado Safety",
		Steps: []string{
			"Go to a small, windowless interior room on the lowest level.",
			"Cover your head and neck; protect from flying debris.",
			"Avoid windows and large open rooms like gyms.",
		},
	},
	{
		Type:  "earthquake",
		Title: "Earthquake Safety",
		Steps: []string{
			"Drop, Cover, and Hold On.",
			"Stay indoors until shaking stops and it is safe to exit.",
			"If outdoors, move away from buildings, streetlights, and utility wires.",
		},
	},
	{
		Type:  "wildfire",
		Title: "Wildfire Safety",
		Steps: []string{
			"Prepare to evacuate; keep car fueled and backed in.",
			"Keep N95 mask for smoke; close windows and doors.",
			"Follow local evacuation orders immediately.",
		},
	},
	{
		Type:  "flood",
		Title: "Flood Safety",
		Steps: []string{
			"Turn Around, Don't Drown: avoid driving through floodwaters.",
			"Move to higher ground; avoid basements and low-lying areas.",
			"Disconnect electricity if instructed by authorities.",
		},
	},
}

// Protocols returns the fixed guidance set. The slice is shared; callers
// must not mutate it.
func Protocols() []model.SafetyProtocol {
	return protocols
}
