package entity

// LeadStatus tracks how far a prospective deal has progressed. The set is
// open: stored values outside these constants are returned as-is.
type LeadStatus string

const (
	LeadStatusProspect     LeadStatus = "prospect"
	LeadStatusSubmitted    LeadStatus = "submitted"
	LeadStatusSuccessful   LeadStatus = "successful"
	LeadStatusUnsuccessful LeadStatus = "unsuccessful"
)

// Lead is a prospective piece of business being tracked before it becomes a
// Project. Estimates bound the expected value of the deal; ClosingDate is an
// opaque date string carried through unparsed.
type Lead struct {
	ID            int64      // System-generated identifier.
	Name          string     // Organization or lead name.
	Description   string     // One-line summary, e.g. "Solar Power Manufacturer".
	UpperEstimate int64      // Upper bound of the deal value.
	LowerEstimate int64      // Lower bound of the deal value.
	ClosingDate   string     // Expected closing date, e.g. "2021-12-12".
	Status        LeadStatus // Current pipeline status.
}
