package flowlayout

// LengthUnit distinguishes an absolute length from a percentage. Percentages
// are resolved late, at the point of use, against whatever containing
// dimension is in scope at that call site  — never eagerly.
type LengthUnit int

const (
	UnitAu LengthUnit = iota
	UnitPercent
)

// StyleLength is a single CSS <length-percentage> value as it appears on
// ComputedValues, before Auto-resolution.
type StyleLength struct {
	Unit  LengthUnit
	Value float64 // Au count for UnitAu, 0-100 style percentage for UnitPercent
}

func Fixed(a Au) StyleLength {
	return StyleLength{Unit: UnitAu, Value: float64(a)}
}

func Percent(p float64) StyleLength {
	return StyleLength{Unit: UnitPercent, Value: p}
}

// Resolve converts a StyleLength to Au given the containing dimension to
// resolve a percentage against.
func (l StyleLength) Resolve(containing Au) Au {
	switch l.Unit {
	case UnitPercent:
		return containing.Scale(l.Value / 100.0)
	default:
		return Au(l.Value)
	}
}

// MaybeAuto is the CSS computed-value sum type "auto | <length-percentage>".
// isAuto marks the Auto variant; otherwise specified carries the
// unresolved value.
type MaybeAuto struct {
	isAuto    bool
	specified StyleLength
}

func Auto() MaybeAuto {
	return MaybeAuto{isAuto: true}
}

func Specified(v StyleLength) MaybeAuto {
	return MaybeAuto{specified: v}
}

func SpecifiedAu(a Au) MaybeAuto {
	return MaybeAuto{specified: Fixed(a)}
}

func (m MaybeAuto) IsAuto() bool {
	return m.isAuto
}

// FromStyle resolves m against a containing dimension: a style length
// percentage resolves against `containing`; an explicit Auto passes
// through as MaybeAuto auto (the caller decides the default).
func FromStyle(m MaybeAuto, containing Au) MaybeAuto {
	if m.isAuto {
		return m
	}
	return SpecifiedAu(m.specified.Resolve(containing))
}

// SpecifiedOrZero returns the Au value or zero when auto. A percentage is
// not resolved here (its raw value is returned), so callers resolve one
// with FromStyle first.
func (m MaybeAuto) SpecifiedOrZero() Au {
	if m.isAuto {
		return 0
	}
	return Au(m.specified.Value)
}

// SpecifiedOrDefault returns the Au value or the supplied default when
// auto. Like SpecifiedOrZero, it does not resolve a percentage.
func (m MaybeAuto) SpecifiedOrDefault(d Au) Au {
	if m.isAuto {
		return d
	}
	return Au(m.specified.Value)
}
