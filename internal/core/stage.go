package core

// Stage is a step of a wipe run.
type Stage int

const (
	StageStart Stage = iota
	StageParsedArgs
	StageOpened
	StageSizeKnown
	StageConfirmed
	StageDeclined
	StageOverwritten
	StageDeleted
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageStart:       "start",
	StageParsedArgs:  "parsed-args",
	StageOpened:      "opened",
	StageSizeKnown:   "size-known",
	StageConfirmed:   "confirmed",
	StageDeclined:    "declined",
	StageOverwritten: "overwritten",
	StageDeleted:     "deleted",
	StageDone:        "done",
	StageFailed:      "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

