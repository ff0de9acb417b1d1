package layout

// Option configures a Builder. Options are applied in order, each
// overriding whatever an earlier option set, following the functional
// options pattern used throughout this codebase's foundation library.
type Option func(*config)

type config struct {
	sideLength    float64
	wallThickness float64
	widthParity   Parity
	heightParity  Parity
	fillMode      FillMode
}

const (
	defaultSideLength    = 4.0
	defaultWallThickness = 1.7
)

func newConfig(opts ...Option) config {
	c := config{
		sideLength:    defaultSideLength,
		wallThickness: defaultWallThickness,
		widthParity:   Odd,
		heightParity:  Odd,
		fillMode:      StretchEdge,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSideLength sets the room side length in millimetres, including wall
// thickness. Default 4.0.
func WithSideLength(mm float64) Option {
	return func(c *config) { c.sideLength = mm }
}

// WithWallThickness sets the wall thickness in millimetres. Default 1.7.
func WithWallThickness(mm float64) Option {
	return func(c *config) { c.wallThickness = mm }
}

// WithWidthParity constrains the resolved nx. Default Odd.
func WithWidthParity(p Parity) Option {
	return func(c *config) { c.widthParity = p }
}

// WithHeightParity constrains the resolved ny. Default Odd.
func WithHeightParity(p Parity) Option {
	return func(c *config) { c.heightParity = p }
}

// WithFillMode selects how per-cell geometry fills the canvas. Default
// StretchEdge.
func WithFillMode(m FillMode) Option {
	return func(c *config) { c.fillMode = m }
}
