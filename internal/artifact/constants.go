package artifact

// File and directory name constants for the ~/.claude tree.
const (
	// ClaudeDirName is the configuration root under the user's home
	ClaudeDirName = ".claude"

	// SkillDirName is the directory under commands/ that holds the skill
	SkillDirName = "codex"

	// CommandsDirName is the standard directory name for commands
	CommandsDirName = "commands"

	// AgentsDirName is the standard directory name for agents
	AgentsDirName = "agents"

	// ScriptsDirName is the directory for helper scripts
	ScriptsDirName = "scripts"

	// ExecutableMode is applied to helper scripts on unix
	ExecutableMode = 0755
)
