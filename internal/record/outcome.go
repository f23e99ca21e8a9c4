package record

// OutcomeKind classifies a delete attempt.
type OutcomeKind string

const (
	OutcomeNotFound OutcomeKind = "not_found"
	OutcomeDeleted  OutcomeKind = "deleted"
	OutcomeFailed   OutcomeKind = "failed"
)

// DeleteOutcome is the result of Store.Delete. Err is set only for
// OutcomeFailed and is never shown to the user.
type DeleteOutcome struct {
	Kind     OutcomeKind
	FileName string
	Err      error
}

// Message is the user-facing text for the outcome.
func (o DeleteOutcome) Message() string {
	switch o.Kind {
	case OutcomeNotFound:
		return MsgFileNotFound + o.FileName
	case OutcomeDeleted:
		return MsgFileDeleted + o.FileName
	default:
		return MsgDeleteFailed
	}
}

// Failed reports whether the file could not be removed.
func (o DeleteOutcome) Failed() bool {
	return o.Kind == OutcomeFailed
}
