package pathgen

// Option configures a Generate call.
type Option func(*Config)

// Config holds the tunables spec.md §4.7 leaves to the caller.
type Config struct {
	// AllowIslands permits leftover Normal rooms to become decoy paths
	// instead of aborting the attempt.
	AllowIslands bool
	// DeadEndBudget bounds how many steps a dead-end endpoint's inward
	// carve may take before it is left as a stub.
	DeadEndBudget int
}

const defaultDeadEndBudget = 24

func defaultConfig() Config {
	return Config{AllowIslands: true, DeadEndBudget: defaultDeadEndBudget}
}

// NewConfig builds a Config from defaults plus the given options.
func NewConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithAllowIslands sets whether unvisited Normal rooms are tolerated as
// decoy islands rather than causing the attempt to abort.
func WithAllowIslands(allow bool) Option {
	return func(c *Config) { c.AllowIslands = allow }
}

// WithDeadEndBudget sets the step budget for a dead-end endpoint's inward
// carve.
func WithDeadEndBudget(n int) Option {
	return func(c *Config) { c.DeadEndBudget = n }
}
