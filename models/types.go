package models

// Capacity and labelling constants
const (
	MaxItems = 10
)

// Labels are handed out by position: the item at index i always holds Labels[i].
var Labels = [MaxItems]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// StorageKey is the key the session state lives under in the kv table
const StorageKey = "prioritisation-matrix-state-v2"

// Wizard phase constants
const (
	PhaseInput     = "input"
	PhaseComparing = "comparing"
	PhaseResults   = "results"
)

// Presentation variants
const (
	VariantGrid       = "grid"
	VariantSequential = "sequential"
)

// Domain types

type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Pair is an unordered comparison; Row always precedes Col in the item list.
type Pair struct {
	Row Item `json:"row"`
	Col Item `json:"col"`
}

// Ref returns the identifier-only form of the pair used in persisted state.
func (p Pair) Ref() PairRef {
	return PairRef{Row: p.Row.ID, Col: p.Col.ID}
}

type PairRef struct {
	Row string `json:"row"`
	Col string `json:"col"`
}

// Result is derived from items and comparisons and never stored
type Result struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	WinCount int    `json:"wins"`
	Rank     int    `json:"rank"` // competition ranking, 1-indexed
}

type Progress struct {
	Compared int `json:"compared"`
	Total    int `json:"total"`
}

// Persisted types

// State is the JSON blob written to the key-value store after every mutation.
// The wizard fields are only present for the sequential variant.
type State struct {
	Items             []Item            `json:"items"`
	Comparisons       map[string]string `json:"comparisons"`
	ComparisonPairs   []PairRef         `json:"comparisonPairs,omitempty"`
	CurrentComparison int               `json:"currentComparison,omitempty"`
	Phase             string            `json:"phase,omitempty"`
}

// EmptyState returns the default state used when nothing usable is stored
func EmptyState() State {
	return State{
		Items:       []Item{},
		Comparisons: map[string]string{},
	}
}

// Command types

// Command is a single parsed input line
type Command struct {
	Name string
	Args []string
	Raw  string
}

// Response types

type StatusResponse struct {
	Items    int      `json:"items"`
	Max      int      `json:"max"`
	Progress Progress `json:"progress"`
	Phase    string   `json:"phase,omitempty"`
	Variant  string   `json:"variant"`
}
