package novelty

import "github.com/fatih/color"

// Band buckets a novelty score for display.
type Band string

const (
	BandPioneer  Band = "PIONEER"  // >= 0.8: mostly new concepts
	BandExplorer Band = "EXPLORER" // >= 0.6
	BandIterator Band = "ITERATOR" // >= 0.4
	BandVariant  Band = "VARIANT"  // >= 0.2
	BandEcho     Band = "ECHO"     // < 0.2: mostly repetition
)

// Classify maps a novelty score to its band. Boundaries are inclusive on the
// upper side: exactly 0.8 is a Pioneer, exactly 0.2 a Variant.
func Classify(score float64) Band {
	switch {
	case score >= 0.8:
		return BandPioneer
	case score >= 0.6:
		return BandExplorer
	case score >= 0.4:
		return BandIterator
	case score >= 0.2:
		return BandVariant
	default:
		return BandEcho
	}
}

// Label returns the band with its display glyph.
func (b Band) Label() string {
	switch b {
	case BandPioneer:
		return "🌟 PIONEER"
	case BandExplorer:
		return "🔬 EXPLORER"
	case BandIterator:
		return "🔄 ITERATOR"
	case BandVariant:
		return "🪞 VARIANT"
	default:
		return "🔁 ECHO"
	}
}

// Color returns the display color for the band.
func (b Band) Color() *color.Color {
	switch b {
	case BandPioneer:
		return color.New(color.FgGreen)
	case BandExplorer:
		return color.New(color.FgCyan)
	case BandIterator:
		return color.New(color.FgYellow)
	case BandVariant:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgRed)
	}
}
