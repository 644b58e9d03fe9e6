package job

// Status is the application-status of a tracked posting. Stored as plain text
// on the remote side, so values read back from storage must be revalidated.
type Status string

const (
	StatusSaved        Status = "Saved"
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusRejected     Status = "Rejected"
)

// DefaultStatus substitutes for unknown stored values.
const DefaultStatus = StatusSaved

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	default:
		return false
	}
}

// StatusOrDefault validates a stored string, falling back to DefaultStatus
// rather than failing on stale or hand-edited data.
func StatusOrDefault(s string) Status {
	st := Status(s)
	if !st.IsValid() {
		return DefaultStatus
	}
	return st
}

// OutreachStatus tracks the referral-hunting progress for a posting.
type OutreachStatus string

const (
	OutreachHaveToFind   OutreachStatus = "Have to Find"
	OutreachFoundContact OutreachStatus = "Found Contact"
	OutreachReachedOut   OutreachStatus = "Reached Out"
	OutreachReferred     OutreachStatus = "Referred"
)

const DefaultOutreachStatus = OutreachHaveToFind

func (s OutreachStatus) String() string {
	return string(s)
}

func (s OutreachStatus) IsValid() bool {
	switch s {
	case OutreachHaveToFind, OutreachFoundContact, OutreachReachedOut, OutreachReferred:
		return true
	default:
		return false
	}
}

func OutreachStatusOrDefault(s string) OutreachStatus {
	st := OutreachStatus(s)
	if !st.IsValid() {
		return DefaultOutreachStatus
	}
	return st
}

// ReferralStatus is the state of a single referral lead.
type ReferralStatus string

const (
	ReferralNotContacted ReferralStatus = "Not Yet Contacted"
	ReferralContacted    ReferralStatus = "Contacted"
	ReferralReceived     ReferralStatus = "Referral Received"
	ReferralNoResponse   ReferralStatus = "No Response"
)

const DefaultReferralStatus = ReferralNotContacted

func (s ReferralStatus) String() string {
	return string(s)
}

func (s ReferralStatus) IsValid() bool {
	switch s {
	case ReferralNotContacted, ReferralContacted, ReferralReceived, ReferralNoResponse:
		return true
	default:
		return false
	}
}

func ReferralStatusOrDefault(s string) ReferralStatus {
	st := ReferralStatus(s)
	if !st.IsValid() {
		return DefaultReferralStatus
	}
	return st
}
