package model

// SafetyProtocol is one hazard-specific guidance document with ordered steps.
type SafetyProtocol struct {
	Type  string   `json:"type"`
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}
