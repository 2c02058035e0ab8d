package mistakes

import (
	"fmt"
	"strings"
)

// Kind classifies an observed mistake on a concept.
type Kind string

const (
	// KindSlip is a careless error on otherwise solid ground.
	KindSlip Kind = "slip"
	// KindMethodError is a wrong procedure applied with confidence.
	KindMethodError Kind = "method-error"
	// KindPrereqGap points at missing prerequisite knowledge.
	KindPrereqGap Kind = "prerequisite-gap"
	// KindTimeout is running out of time before answering.
	KindTimeout Kind = "timeout"
	// KindUnknown is anything the caller could not classify.
	KindUnknown Kind = "unknown"
)

// AllKinds returns every valid kind in display order.
func AllKinds() []Kind {
	return []Kind{KindSlip, KindMethodError, KindPrereqGap, KindTimeout, KindUnknown}
}

// Valid reports whether k is a recognized kind.
func (k Kind) Valid() bool {
	switch k {
	case KindSlip, KindMethodError, KindPrereqGap, KindTimeout, KindUnknown:
		return true
	}
	return false
}

// Label returns a short human description for display.
func (k Kind) Label() string {
	switch k {
	case KindSlip:
		return "careless slip"
	case KindMethodError:
		return "wrong method"
	case KindPrereqGap:
		return "prerequisite gap"
	case KindTimeout:
		return "ran out of time"
	default:
		return "unclassified"
	}
}

// ParseKind converts a string into a Kind, rejecting unrecognized values.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown mistake kind %q (valid: %s)", s, kindList())
	}
	return k, nil
}

func kindList() string {
	kinds := AllKinds()
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
