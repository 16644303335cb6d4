package domain

import "time"

// Profile is the single locally persisted record of the last consultant who
// generated a report.
type Profile struct {
	EmployeeName  string
	ClientName    string
	Signature     []byte
	SignatureMIME string
	UpdatedAt     time.Time
}

// HasSignature reports whether a signature image is stored.
func (p *Profile) HasSignature() bool {
	return p != nil && len(p.Signature) > 0
}
