package ssml

// Default values applied when an option is left empty.
const (
	DefaultPause         = "0.8s"
	DefaultListPause     = "0.2s"
	DefaultBreakStrength = "strong"
	DefaultSeparator     = "and"
	WhisperedEffect      = "whispered"
	InterpretAsDate      = "date"
	RootElement          = "speak"
	RoleVerb             = "amazon:VB"
	RolePastParticiple   = "amazon:VBD"
	RoleNoun             = "amazon:NN"
	RoleNonDefaultSense  = "amazon:SENSE_1"
)

// EmphasisOptions configure <emphasis>.
type EmphasisOptions struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

// PhonemeOptions configure <phoneme>. Alphabet and Ph are independent.
type PhonemeOptions struct {
	Alphabet string `json:"alphabet,omitempty" yaml:"alphabet,omitempty"`
	Ph       string `json:"ph,omitempty" yaml:"ph,omitempty"`
}

// SubOptions configure <sub>.
type SubOptions struct {
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// SayAsOptions configure <say-as>.
type SayAsOptions struct {
	InterpretAs string `json:"interpretAs,omitempty" yaml:"interpretAs,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
}

// WOptions configure <w>. Role carries the part-of-speech code.
type WOptions struct {
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
}

// ProsodyOptions configure <prosody>. Attributes render as rate, pitch,
// volume regardless of which are set.
type ProsodyOptions struct {
	Rate   string `json:"rate,omitempty" yaml:"rate,omitempty"`
	Pitch  string `json:"pitch,omitempty" yaml:"pitch,omitempty"`
	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`
}

// AmazonEffectOptions configure <amazon:effect>.
type AmazonEffectOptions struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// BreakOptions configure <break>. Time wins over Strength; with neither set
// the break falls back to DefaultBreakStrength.
type BreakOptions struct {
	Time     string `json:"time,omitempty" yaml:"time,omitempty"`
	Strength string `json:"strength,omitempty" yaml:"strength,omitempty"`
}

// ListOptions configure the numbered and ordinal readouts.
type ListOptions struct {
	// Pause follows every item, the last included. Defaults to
	// DefaultListPause.
	Pause string `json:"pause,omitempty" yaml:"pause,omitempty"`
	// Start is the position spoken for the first item. Values below 1
	// mean 1.
	Start int `json:"start,omitempty" yaml:"start,omitempty"`
}

// ConjunctionOptions configure ReadAsList.
type ConjunctionOptions struct {
	// Separator is spoken between items. Defaults to DefaultSeparator and is
	// escaped like item text.
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`
	// LastSeparator replaces the final separator when the list has more than
	// one item. It is emitted as given.
	LastSeparator        string `json:"lastSeparator,omitempty" yaml:"lastSeparator,omitempty"`
	PauseBeforeSeparator string `json:"pauseBeforeSeparator,omitempty" yaml:"pauseBeforeSeparator,omitempty"`
	PauseAfterSeparator  string `json:"pauseAfterSeparator,omitempty" yaml:"pauseAfterSeparator,omitempty"`
}
