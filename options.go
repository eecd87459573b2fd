package wand

// Params holds the tunable parameters of a selection operation. Hosts
// usually source these from UI controls; the zero value of each field is
// replaced by the defaults below.
type Params struct {
	// Tolerance is the maximum Euclidean RGBA distance (8-bit channel
	// units, range [0, 510]) between a pixel and the seed color for the
	// pixel to join a flood selection.
	Tolerance float64

	// Contiguous restricts a flood selection to pixels reachable from
	// the seed through 4-connected in-tolerance neighbors. When false,
	// every in-tolerance pixel on the surface is selected regardless of
	// connectivity.
	Contiguous bool

	// Threshold is the Sobel gradient magnitude above which a pixel
	// joins an edge selection.
	Threshold float64

	// AutoThreshold derives Threshold from the image itself (Otsu's
	// method over the gradient-magnitude histogram), ignoring the
	// Threshold field.
	AutoThreshold bool

	// AntiAlias renders fractional coverage on geometric selection
	// boundaries. When false, coverage is thresholded to 0 or 255.
	AntiAlias bool

	// Feather is a Gaussian blur radius in pixels applied to the
	// finished mask. 0 disables feathering.
	Feather float64
}

const (
	defaultTolerance = 32.0
	defaultThreshold = 50.0

	// maxDistance is the largest possible 4-channel Euclidean color
	// distance in 8-bit channel units: sqrt(4 * 255^2).
	maxDistance = 510.0
)

// Option configures the parameters of a selection operation.
type Option func(*Params)

// defaultParams returns the parameters used when no options are given.
func defaultParams() Params {
	return Params{
		Tolerance:  defaultTolerance,
		Contiguous: true,
		Threshold:  defaultThreshold,
		AntiAlias:  true,
	}
}

func applyOptions(opts []Option) Params {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithTolerance sets the flood-fill color tolerance directly in distance
// units [0, 510]. Values outside the range are clamped.
func WithTolerance(tolerance float64) Option {
	return func(p *Params) {
		if tolerance < 0 {
			tolerance = 0
		}
		if tolerance > maxDistance {
			tolerance = maxDistance
		}
		p.Tolerance = tolerance
	}
}

// WithTolerancePercent sets the flood-fill tolerance from a 1-100 UI
// slider, mapped linearly onto the [0, 510] distance range.
func WithTolerancePercent(percent int) Option {
	if percent < 1 {
		percent = 1
	}
	if percent > 100 {
		percent = 100
	}
	return WithTolerance(float64(percent) / 100 * maxDistance)
}

// WithContiguous controls whether a flood selection is limited to the
// 4-connected region around the seed (true, the default) or spans all
// matching pixels on the surface (false).
func WithContiguous(contiguous bool) Option {
	return func(p *Params) {
		p.Contiguous = contiguous
	}
}

// WithThreshold sets the edge-selection gradient magnitude threshold.
func WithThreshold(threshold float64) Option {
	return func(p *Params) {
		p.Threshold = threshold
		p.AutoThreshold = false
	}
}

// WithAutoThreshold derives the edge-selection threshold from the
// gradient-magnitude histogram using Otsu's method.
func WithAutoThreshold() Option {
	return func(p *Params) {
		p.AutoThreshold = true
	}
}

// WithAntiAlias controls fractional coverage on geometric selection
// boundaries. Enabled by default.
func WithAntiAlias(antiAlias bool) Option {
	return func(p *Params) {
		p.AntiAlias = antiAlias
	}
}

// WithFeather applies a Gaussian feather of the given radius to the
// finished mask.
func WithFeather(radius float64) Option {
	return func(p *Params) {
		if radius < 0 {
			radius = 0
		}
		p.Feather = radius
	}
}
