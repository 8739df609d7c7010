package domain

import (
	"errors"
	"fmt"
	"time"
)

// AssessmentUnavailable is shown when no assessment was attempted or recorded.
const AssessmentUnavailable = "Assessment data not available for this upload."

// ErrInconsistentOutcome is returned for stored fields that match no Outcome: an assessment
// together with an error, or an assessment and its timestamp without each other.
var ErrInconsistentOutcome = errors.New("record outcome fields are inconsistent")

// Outcome is what the assessment step produced for an upload.
// It is one of Assessed, Failed or Pending.
type Outcome interface {
	outcome()
}

type Assessed struct {
	Assessment DamageAssessment
	AssessedAt time.Time
}

// Failed means an assessment was attempted and did not produce a result.
type Failed struct {
	Reason string
}

// Pending means no assessment was attempted or none was recorded.
type Pending struct{}

func (Assessed) outcome() {}
func (Failed) outcome()   {}
func (Pending) outcome()  {}

// OutcomeFromFields rebuilds an Outcome from its flat stored form.
func OutcomeFromFields(assessment *DamageAssessment, assessedAt *time.Time, assessmentError string) (Outcome, error) {
	switch {
	case assessment != nil && assessmentError != "":
		return nil, fmt.Errorf("%w: both an assessment and an assessment error are set", ErrInconsistentOutcome)
	case (assessment == nil) != (assessedAt == nil):
		return nil, fmt.Errorf("%w: assessment and assessedAt must be set together", ErrInconsistentOutcome)
	case assessment != nil:
		return Assessed{Assessment: *assessment, AssessedAt: *assessedAt}, nil
	case assessmentError != "":
		return Failed{Reason: assessmentError}, nil
	default:
		return Pending{}, nil
	}
}

// OutcomeFields flattens an Outcome into its stored form. Absent fields are nil.
func OutcomeFields(o Outcome) (assessment *DamageAssessment, assessedAt *time.Time, assessmentError *string) {
	switch o := o.(type) {
	case Assessed:
		a, at := o.Assessment, o.AssessedAt
		return &a, &at, nil
	case Failed:
		reason := o.Reason
		return nil, nil, &reason
	default:
		return nil, nil, nil
	}
}

// AssessmentMessage explains why an upload has no assessment. It is empty for Assessed.
func AssessmentMessage(o Outcome) string {
	switch o := o.(type) {
	case Assessed:
		return ""
	case Failed:
		return fmt.Sprintf("Assessment unavailable: %s", o.Reason)
	default:
		return AssessmentUnavailable
	}
}
