package ratio

import "github.com/fatih/color"

// Class buckets a task by its discourse/delivery balance.
type Class string

const (
	ClassNew      Class = "NEW"      // no activity yet
	ClassAllTalk  Class = "ALL TALK" // discourse without delivery
	ClassShipped  Class = "SHIPPED"  // pure delivery
	ClassTheory   Class = "THEORY"   // ratio > 10
	ClassActive   Class = "ACTIVE"   // ratio > 3
	ClassBuilding Class = "BUILDING" // more code than talk
)

// Classify maps a score to its class. The activity cases are checked before
// the ratio thresholds, in priority order; the first match wins.
func Classify(s Score) Class {
	switch {
	case s.PRs == 0 && s.Comments == 0:
		return ClassNew
	case s.PRs == 0 && s.Comments > 0:
		return ClassAllTalk
	case s.PRs > 0 && s.Comments == 0:
		return ClassShipped
	case !s.Ratio.Infinite && s.Ratio.Value > 10:
		return ClassTheory
	case !s.Ratio.Infinite && s.Ratio.Value > 3:
		return ClassActive
	default:
		return ClassBuilding
	}
}

// Label returns the class with its display glyph.
func (c Class) Label() string {
	switch c {
	case ClassNew:
		return "🌱 NEW"
	case ClassAllTalk:
		return "💬 ALL TALK"
	case ClassShipped:
		return "⚡ SHIPPED"
	case ClassTheory:
		return "📚 THEORY"
	case ClassActive:
		return "🗣️ ACTIVE"
	default:
		return "✅ BUILDING"
	}
}

// Color returns the display color for the class.
func (c Class) Color() *color.Color {
	switch c {
	case ClassAllTalk, ClassTheory:
		return color.New(color.FgRed)
	case ClassActive:
		return color.New(color.FgYellow)
	case ClassShipped, ClassBuilding:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgHiBlack)
	}
}
