package setting

// Step shifts the current selection of a labeled choice by a signed
// number of positions within its active group. The shift clamps to
// the group's bounds. Steps are only meaningful when assigned to a
// LabeledChoice or IndexedLabeledChoice.
type Step int

// Steps for the usual 1-2-5 instrument sequences, where one decade is
// three positions.
const (
	StepUp         Step = 1
	StepDown       Step = -1
	StepUpDecade   Step = 3
	StepDownDecade Step = -3
)
