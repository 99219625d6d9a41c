package seahorse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Action defines a command's execution logic. It receives the arguments
// remaining after the subcommand token and reports failure through the
// returned error. [App.Run] returns the error unmodified; printing, exit
// codes and any further parsing are entirely the action's responsibility.
type Action func(args []string) error

// Command represents a single named subcommand within an [App].
type Command struct {
	// Name is always a single word identifying the command. It is matched
	// against the first argument after the program path, using exact string
	// equality.
	Name string

	// Usage provides the command's usage pattern, shown next to its name in
	// help output.
	//
	// Example: "todo add [task...]"
	Usage string

	// Action is called when [App.Run] selects this command. It receives only
	// the arguments following the command name.
	Action Action
}

// App is a command-line application: top-level metadata plus an ordered list
// of subcommands. The host populates it fully before calling [App.Run] and
// must not mutate it afterward.
type App struct {
	// Name is the application's name, shown in help output.
	Name string

	// DisplayName is an optional banner printed above the rest of the help
	// output, typically a decorated form of Name. The string is used as-is;
	// any coloring is the host's concern.
	DisplayName string

	// Usage provides the application's full usage pattern.
	//
	// Example: "todo [command] [args...]"
	Usage string

	// Version is the application's version string, shown in help output.
	Version string

	// Commands holds the registered subcommands. Ordering carries no dispatch
	// semantics; it determines only the order of the help listing.
	Commands []*Command

	// Out is the destination for help output. If nil, [os.Stdout] is used.
	Out io.Writer
}

// Register appends c to the application's command list. Registration order is
// preserved in help output. Names are not checked here; [App.Run] validates
// the complete registry once before dispatching.
func (a *App) Register(c *Command) {
	a.Commands = append(a.Commands, c)
}

// Run dispatches on args, the full process argument vector including the
// program path at index 0, typically os.Args.
//
// The first argument after the program path is compared against the
// registered command names in registration order; on a match the command's
// action is invoked with the remaining arguments and its error returned
// unmodified. When no argument is supplied, or the argument matches no
// command, Run writes the help text to [App.Out] and returns nil: a miss is
// defined behavior, not an error.
//
// Run returns an error without dispatching if the registry is invalid. See
// [App.Register].
func (a *App) Run(args []string) error {
	if err := validateCommands(a.Commands); err != nil {
		return fmt.Errorf("failed to run: %w", err)
	}
	out := a.Out
	if out == nil {
		out = os.Stdout
	}
	if len(args) < 2 {
		_, err := fmt.Fprintln(out, DefaultHelp(a))
		return err
	}
	cmd := a.findCommand(args[1])
	if cmd == nil {
		_, err := fmt.Fprintln(out, DefaultHelp(a))
		return err
	}
	return cmd.Action(args[2:])
}

// findCommand searches for a command by name and returns it if found. Returns
// nil if no command with the given name exists.
func (a *App) findCommand(name string) *Command {
	for _, c := range a.Commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func validateCommands(commands []*Command) error {
	seen := make(map[string]bool, len(commands))
	for i, c := range commands {
		if c == nil {
			return fmt.Errorf("command at index %d is nil", i)
		}
		if c.Name == "" {
			return errors.New("command has no name")
		}
		if strings.Contains(c.Name, " ") {
			return fmt.Errorf("command name %q contains spaces", c.Name)
		}
		if c.Action == nil {
			return fmt.Errorf("command %q has no action", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate command %q", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}
