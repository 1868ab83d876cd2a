// Package model defines shared data structures.
package model

// ListConfig defines list-building settings after flags and config are merged.
type ListConfig struct {
	Paths         []string
	Combine       []string
	Fallback      string
	ForceFallback bool
	Mutator       string
	KeepEmpty     bool
	Split         string
	MinLen        int
	Sync          bool
}

// PickConfig defines random word selection settings.
type PickConfig struct {
	Count   int
	CapsPct float64
	Sep     string
}

// GenConfig defines word-gen settings.
type GenConfig struct {
	Sources     []string
	Exclude     []string
	Out         string
	ExcludedOut string
}

// SourceCount reports how many words one source contributed.
type SourceCount struct {
	Path  string
	Lines int
	Words int
}
