package mastery

// Band buckets a raw score for display purposes. The scheduler works
// with raw scores; bands exist only for the CLI and TUI.
type Band int

const (
	BandFresh      Band = iota // no recorded attempt
	BandDeveloping             // attempted, below threshold
	BandProficient             // at or above threshold
)

// BandFor maps a score onto its display band for the given threshold.
func BandFor(score, threshold float64) Band {
	switch {
	case score >= threshold:
		return BandProficient
	case score > 0:
		return BandDeveloping
	default:
		return BandFresh
	}
}

// Label returns the display label for a band.
func (b Band) Label() string {
	switch b {
	case BandFresh:
		return "Fresh"
	case BandDeveloping:
		return "Developing"
	case BandProficient:
		return "Proficient"
	default:
		return "Unknown"
	}
}

// Icon returns the display icon for a band.
func (b Band) Icon() string {
	switch b {
	case BandFresh:
		return "○"
	case BandDeveloping:
		return "◐"
	case BandProficient:
		return "●"
	default:
		return "?"
	}
}
