package domain

// Runner identifies who consumes the generated source.
type Runner string

const (
	// RunnerEmbedded is the in-app driver runtime. Output carries command markers.
	RunnerEmbedded Runner = "RUNNER_PUPPETRY"
	// RunnerExport is a stand-alone jest export.
	RunnerExport Runner = "RUNNER_JEST"
)

const (
	// PageTarget is the reserved target name addressing the page itself.
	PageTarget = "page"
	// CommandMarker prefixes the groupId:testId:commandId line emitted before
	// every command when generating for RunnerEmbedded. Execution trace
	// consumers parse this exact layout.
	CommandMarker = "// COMMAND ID: "
	// InteractiveTimeout bounds every interactive-mode wait, in milliseconds.
	InteractiveTimeout = 900000
)

// DefaultInteractiveDenylist lists methods that cannot be paused on in interactive mode.
var DefaultInteractiveDenylist = []string{"setViewport"}

// Suite is the top-level authored test model.
type Suite struct {
	Title   string   `yaml:"title" json:"title"`
	Timeout int      `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Targets []Target `yaml:"targets,omitempty" json:"targets,omitempty"`
	Groups  []Group  `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// Group is a named collection of tests.
type Group struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Tests    []Test `yaml:"tests,omitempty" json:"tests,omitempty"`
}

// Test is an ordered sequence of commands.
type Test struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Disabled bool      `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Commands []Command `yaml:"commands,omitempty" json:"commands,omitempty"`
}

// EnabledCommands returns the commands not marked disabled, in order.
func (t Test) EnabledCommands() []Command {
	var out []Command
	for _, c := range t.Commands {
		if !c.Disabled {
			out = append(out, c)
		}
	}
	return out
}

// Command is the atomic renderable unit: one method applied to one target.
type Command struct {
	ID        string            `yaml:"id" json:"id"`
	GroupID   string            `yaml:"groupId,omitempty" json:"groupId,omitempty"`
	TestID    string            `yaml:"testId,omitempty" json:"testId,omitempty"`
	Target    string            `yaml:"target" json:"target"`
	Method    string            `yaml:"method" json:"method"`
	Params    map[string]any    `yaml:"params,omitempty" json:"params,omitempty"`
	Assert    *Assert           `yaml:"assert,omitempty" json:"assert,omitempty"`
	Variables map[string]string `yaml:"variables,omitempty" json:"variables,omitempty"`
	Disabled  bool              `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	IsRef     bool              `yaml:"isRef,omitempty" json:"isRef,omitempty"`
	Ref       string            `yaml:"ref,omitempty" json:"ref,omitempty"`
}

// Assert describes an assertion attached to a command. Target is set when
// the assertion reads a second target.
type Assert struct {
	Target    string `yaml:"target,omitempty" json:"target,omitempty"`
	Assertion string `yaml:"assertion,omitempty" json:"assertion,omitempty"`
	Type      string `yaml:"type,omitempty" json:"type,omitempty"`
	Value     any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// Target binds a logical element name to a selector.
type Target struct {
	Name     string `yaml:"target" json:"target"`
	Selector string `yaml:"selector" json:"selector"`
}

// SnippetLibrary holds reusable tests that commands inline by reference.
type SnippetLibrary struct {
	Targets []Target `yaml:"targets,omitempty" json:"targets,omitempty"`
	Tests   []Test   `yaml:"tests,omitempty" json:"tests,omitempty"`
}

// Lookup finds a snippet test by id.
func (l *SnippetLibrary) Lookup(id string) (Test, bool) {
	if l == nil {
		return Test{}, false
	}
	for _, t := range l.Tests {
		if t.ID == id {
			return t, true
		}
	}
	return Test{}, false
}

// Options are the generation flags. Trace and InteractiveMode are evaluated by
// the generator; the rest are handed to the suite composer as-is.
type Options struct {
	Trace             bool `yaml:"trace" json:"trace"`
	InteractiveMode   bool `yaml:"interactive_mode" json:"interactiveMode"`
	UpdateSnapshot    bool `yaml:"update_snapshot" json:"updateSnapshot"`
	Incognito         bool `yaml:"incognito" json:"incognito"`
	IgnoreHTTPSErrors bool `yaml:"ignore_https_errors" json:"ignoreHTTPSErrors"`
}
