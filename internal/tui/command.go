package tui

import "strings"

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) Command {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// CommandKind is what a command asks the app to do.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdQuit
	CmdHelp
	CmdHome
	CmdOpen
)

// aliases maps French view names to kinds.
var aliases = map[string]string{
	"clients":      "customers",
	"fournisseurs": "suppliers",
	"employes":     "employees",
	"employés":     "employees",
	"contrats":     "contracts",
	"prets":        "loans",
	"prêts":        "loans",
	"paie":         "payroll",
	"discipline":   "disciplinary",
	"formations":   "trainings",
	"frais":        "expenses",
}

// Resolve maps cmd to an action. For CmdOpen the returned string is the
// kind to open; a trailing argument is the initial search term.
func (c Command) Resolve(kinds []string) (CommandKind, string) {
	switch c.Name {
	case "q", "q!", "quit", "quitter":
		return CmdQuit, ""
	case "h", "help", "?", "aide":
		return CmdHelp, ""
	case "home", "accueil", "menu":
		return CmdHome, ""
	}
	name := c.Name
	if kind, ok := aliases[name]; ok {
		name = kind
	}
	for _, k := range kinds {
		if k == name {
			return CmdOpen, k
		}
	}
	return CmdUnknown, ""
}
