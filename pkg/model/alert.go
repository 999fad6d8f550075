package model

// Alert is one active hazard alert projected from an NWS geo-JSON feature.
// Every field is optional upstream; fields the provider omits serialize as
// null, matching the raw feature properties.
type Alert struct {
	ID          *string `json:"id"`
	Event       *string `json:"event"`
	Headline    *string `json:"headline"`
	AreaDesc    *string `json:"areaDesc"`
	Severity    *string `json:"severity"`
	Urgency     *string `json:"urgency"`
	Effective   *string `json:"effective"`
	Expires     *string `json:"expires"`
	Instruction *string `json:"instruction"`
}
