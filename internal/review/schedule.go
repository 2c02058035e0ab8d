package review

// BaseIntervals defines the expanding review schedule in days.
// Stage 0 = first review after a concept crosses the mastery threshold.
var BaseIntervals = []int{1, 3, 7, 14, 30, 60}

// MaxStage is the highest stage index in BaseIntervals.
const MaxStage = 5

// GraduationHits is the number of consecutive correct reviews after which
// a concept graduates.
const GraduationHits = 6

// GraduatedIntervalDays is the review interval for graduated concepts.
const GraduatedIntervalDays = 90
