package schema

// Custom string types for type safety.
type (
	// ToolName represents the name of an exposed tool.
	ToolName string

	// ParamKind represents the JSON type of a tool parameter.
	ParamKind string

	// OutputMode represents the format of CLI output.
	OutputMode string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// ValidOutputModes lists the output modes accepted by --output.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
}

// All tools supported.
const (
	StatusTool     ToolName = "git_status"
	DiffStagedTool ToolName = "git_diff_staged"
	DiffAllTool    ToolName = "git_diff_all"
	LogTool        ToolName = "git_log"
)

// All parameter kinds supported.
const (
	StringParam  ParamKind = "string"
	BooleanParam ParamKind = "boolean"
	NumberParam  ParamKind = "number"
)

// Parameter names shared across tools.
const (
	RepoPathParam         = "repo_path"
	IncludeUntrackedParam = "include_untracked"
	LimitParam            = "limit"
)

// Log limit bounds.
const (
	DefaultLogLimit = 10
	MinLogLimit     = 1
	MaxLogLimit     = 50
)

// Replacement text for operations whose git output is empty.
const (
	NoStagedChangesMessage = "No staged changes found. Use 'git add' to stage changes first."
	NoChangesMessage       = "No changes found in the repository."
	NoCommitsMessage       = "No commits found in this repository."
)

// UntrackedSeparator precedes the untracked file list in a full diff.
const UntrackedSeparator = "\n\n--- Untracked files ---\n"

// LogFormat is the pretty format used for commit history: hash - author, time : subject.
const LogFormat = "%h - %an, %ar : %s"

// Server identity advertised to MCP clients.
const (
	ServerName    = "git-commit-helper"
	ServerVersion = "1.0.0"
)
