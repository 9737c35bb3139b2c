package flowlayout

// TextAlign mirrors the handful of CSS text-align values a block formatting
// context propagates to its children,
// text_decoration" propagation).
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// TextDecoration is a propagated, non-inherited-by-default CSS property;
// the block formatting context threads it down to children regardless.
type TextDecoration int

const (
	TextDecorationNone TextDecoration = iota
	TextDecorationUnderline
	TextDecorationOverline
	TextDecorationLineThrough
)

// ClearSide is the CSS `clear` property.
type ClearSide int

const (
	ClearNone ClearSide = iota
	ClearLeft
	ClearRight
	ClearBoth
)

// PositionKind is the subset of CSS `position` this module supports: the
// minimal "fixed root-relative box" case Non-goals.
// Absolute and relative positioning beyond this are out of scope.
type PositionKind int

const (
	PositionStatic PositionKind = iota
	PositionFixed
)

// TableLayoutMode is CSS `table-layout`.
type TableLayoutMode int

const (
	TableLayoutAuto TableLayoutMode = iota
	TableLayoutFixed
)

// BoxStyle is the box-model-relevant subset of ComputedValues.Box.
type BoxStyle struct {
	Width, Height       MaybeAuto
	MinWidth, MaxWidth  MaybeAuto
	MinHeight, MaxHeight MaybeAuto
	Position            PositionKind
	Clear               ClearSide
}

// MarginStyle holds the four margin properties, each independently auto.
type MarginStyle struct {
	Top, Right, Bottom, Left MaybeAuto
}

// PaddingStyle holds the four padding properties. Padding is never auto in
// CSS2.1, so it is carried as resolved StyleLengths.
type PaddingStyle struct {
	Top, Right, Bottom, Left StyleLength
}

// BorderStyle holds the four border widths. Like padding, never auto.
type BorderStyle struct {
	Top, Right, Bottom, Left StyleLength
}

// TextStyle is the propagated subset of text style this core threads
// through block/table flows without interpreting it: InlineFlow owns
// actual text layout.
type TextStyle struct {
	Align      TextAlign
	Decoration TextDecoration
}

// TableStyle is CSS table-specific computed style.
type TableStyle struct {
	Layout TableLayoutMode
}

// ComputedValues is the already-cascaded, already-resolved-to-primitives
// style a flow consults.
// No cascade, inheritance, or parsing lives here (Non-goals
// this is the style a flow tree is handed, already computed.
type ComputedValues struct {
	Box     BoxStyle
	Margin  MarginStyle
	Padding PaddingStyle
	Border  BorderStyle
	Text    TextStyle
	Table   TableStyle
}
