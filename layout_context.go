package flowlayout

// LayoutContext carries the one piece of caller-supplied environment a
// layout pass consults beyond the flow tree itself: the viewport size
// root percentages and auto-margins resolve against.
type LayoutContext struct {
	ScreenSize Size
}

func NewLayoutContext(screenWidth, screenHeight Au) *LayoutContext {
	return &LayoutContext{ScreenSize: Size{Width: screenWidth, Height: screenHeight}}
}

// WithScreenSize returns a copy of ctx with a different screen size.
func (ctx LayoutContext) WithScreenSize(size Size) *LayoutContext {
	ctx.ScreenSize = size
	return &ctx
}
