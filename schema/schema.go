// Package schema has the tool catalog and request types shared by the server and the CLI.
package schema

// StatusRequest holds the parameters for git_status.
type StatusRequest struct {
	RepoPath string `json:"repo_path,omitempty"`
}

// DiffStagedRequest holds the parameters for git_diff_staged.
type DiffStagedRequest struct {
	RepoPath string `json:"repo_path,omitempty"`
}

// DiffAllRequest holds the parameters for git_diff_all.
type DiffAllRequest struct {
	RepoPath         string `json:"repo_path,omitempty"`
	IncludeUntracked bool   `json:"include_untracked,omitempty"`
}

// LogRequest holds the parameters for git_log.
// A nil Limit means the default limit.
type LogRequest struct {
	RepoPath string `json:"repo_path,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
}

// ParamSpec describes a single optional tool parameter.
type ParamSpec struct {
	Name        string    `json:"name"`
	Kind        ParamKind `json:"kind"`
	Description string    `json:"description"`
}

// ToolSpec describes a tool as advertised to callers.
type ToolSpec struct {
	Name        ToolName    `json:"name"`
	Description string      `json:"description"`
	Params      []ParamSpec `json:"params"`
}

var repoPathSpec = ParamSpec{
	Name:        RepoPathParam,
	Kind:        StringParam,
	Description: "Path to the git repository (optional, defaults to current directory)",
}

// Tools is the ordered catalog of every tool the server exposes.
var Tools = []ToolSpec{
	{
		Name:        StatusTool,
		Description: "Shows the current state of a git repository including modified files, staged files, and untracked files. Use this when you need to see what files have changed or when asked questions like 'Show me what files I've changed' or 'What's the current status of my repo?'",
		Params:      []ParamSpec{repoPathSpec},
	},
	{
		Name:        DiffStagedTool,
		Description: "Shows the line-by-line changes for files that have been staged with 'git add'. This is what will be included in the next commit. Particularly useful when generating commit messages. Use this when asked 'Show me what I'm about to commit' or 'Generate a commit message for my staged changes'.",
		Params:      []ParamSpec{repoPathSpec},
	},
	{
		Name:        DiffAllTool,
		Description: "Shows all changes in the repository, including both staged and unstaged modifications. Optionally includes a list of untracked files. Use this when you need to see everything that's changed, not just what's staged. Users might ask 'Show me all my changes' or 'What have I modified in this repository?'",
		Params: []ParamSpec{
			repoPathSpec,
			{
				Name:        IncludeUntrackedParam,
				Kind:        BooleanParam,
				Description: "Include untracked files in the output (default: false)",
			},
		},
	},
	{
		Name:        LogTool,
		Description: "Shows recent commit history so you can understand the project's commit message style and conventions. Formatted as: 'hash - author, time : message'. Use this when asked 'Show me recent commits for context' or 'What's the commit message style in this project?'",
		Params: []ParamSpec{
			repoPathSpec,
			{
				Name:        LimitParam,
				Kind:        NumberParam,
				Description: "Maximum number of commits to show (default: 10, max: 50)",
			},
		},
	},
}

// LookupTool returns the spec for the named tool.
func LookupTool(name ToolName) (ToolSpec, bool) {
	for _, t := range Tools {
		if t.Name == name {
			return t, true
		}
	}
	return ToolSpec{}, false
}

// ToolOutput is the flattened result of one tool call.
type ToolOutput struct {
	Tool    ToolName `json:"tool"`
	IsError bool     `json:"is_error"`
	Text    string   `json:"text"`
}
