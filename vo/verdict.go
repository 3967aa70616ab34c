package vo

type VerdictStatus string

const (
	StatusValid   VerdictStatus = "valid"
	StatusBroken  VerdictStatus = "broken"
	StatusSkipped VerdictStatus = "skipped"
)

// Verdict reason strings are part of the report contract.
const (
	ReasonSpecialProtocol   = "Special protocol or fragment"
	ReasonExternalDisabled  = "External URL check disabled"
	ReasonExternalReachable = "External URL reachable"
	ReasonExternalDead      = "External URL not reachable"
	ReasonLocalExists       = "Local file exists"
	ReasonLocalMissing      = "Local file not found"
	ReasonRobotsBlocked     = "Blocked by robots.txt"
)

type Verdict struct {
	Status VerdictStatus `json:"status"`
	Reason string        `json:"reason"`
}

// CheckedReference is a Reference together with its resolution Verdict.
type CheckedReference struct {
	Reference
	Verdict
}
