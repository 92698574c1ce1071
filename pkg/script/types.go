package script

// Script is a declarative speech document decoded from JSON or YAML.
type Script struct {
	// Root wraps the rendered output in <speak>.
	Root bool `json:"root" yaml:"root"`
	// Vars are available to step text as {{ name }}.
	Vars map[string]any `json:"vars,omitempty" yaml:"vars,omitempty"`
	// Defaults apply to list steps that leave the matching field empty.
	Defaults Defaults `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Steps    []Step   `json:"steps" yaml:"steps"`
}

// Defaults hold script-wide list settings.
type Defaults struct {
	Pause         string `json:"pause,omitempty" yaml:"pause,omitempty"`
	Separator     string `json:"separator,omitempty" yaml:"separator,omitempty"`
	LastSeparator string `json:"lastSeparator,omitempty" yaml:"lastSeparator,omitempty"`
}

// Step is one builder operation. The operation is named by Op, or by a
// shorthand key (say, raw, sentence, paragraph, whisper, audio, list, pause)
// carrying the text directly.
type Step struct {
	Op   string `json:"op,omitempty" yaml:"op,omitempty"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	Say       string `json:"say,omitempty" yaml:"say,omitempty"`
	Raw       string `json:"raw,omitempty" yaml:"raw,omitempty"`
	Sentence  string `json:"sentence,omitempty" yaml:"sentence,omitempty"`
	Paragraph string `json:"paragraph,omitempty" yaml:"paragraph,omitempty"`
	Whisper   string `json:"whisper,omitempty" yaml:"whisper,omitempty"`
	Audio     string `json:"audio,omitempty" yaml:"audio,omitempty"`
	Pause     string `json:"pause,omitempty" yaml:"pause,omitempty"`

	Time     string `json:"time,omitempty" yaml:"time,omitempty"`
	Strength string `json:"strength,omitempty" yaml:"strength,omitempty"`

	Level       string `json:"level,omitempty" yaml:"level,omitempty"`
	Alphabet    string `json:"alphabet,omitempty" yaml:"alphabet,omitempty"`
	Ph          string `json:"ph,omitempty" yaml:"ph,omitempty"`
	Alias       string `json:"alias,omitempty" yaml:"alias,omitempty"`
	InterpretAs string `json:"interpretAs,omitempty" yaml:"interpretAs,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Role        string `json:"role,omitempty" yaml:"role,omitempty"`
	Rate        string `json:"rate,omitempty" yaml:"rate,omitempty"`
	Pitch       string `json:"pitch,omitempty" yaml:"pitch,omitempty"`
	Volume      string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`

	List                 []any  `json:"list,omitempty" yaml:"list,omitempty"`
	Style                string `json:"style,omitempty" yaml:"style,omitempty"`
	Start                int    `json:"start,omitempty" yaml:"start,omitempty"`
	Separator            string `json:"separator,omitempty" yaml:"separator,omitempty"`
	LastSeparator        string `json:"lastSeparator,omitempty" yaml:"lastSeparator,omitempty"`
	PauseBeforeSeparator string `json:"pauseBeforeSeparator,omitempty" yaml:"pauseBeforeSeparator,omitempty"`
	PauseAfterSeparator  string `json:"pauseAfterSeparator,omitempty" yaml:"pauseAfterSeparator,omitempty"`
}

// List styles accepted by Step.Style.
const (
	StyleNumbered    = "numbered"
	StyleOrdinal     = "ordinal"
	StyleConjunctive = "conjunctive"
)
