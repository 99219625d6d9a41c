// Package seahorse provides a minimal framework for building command-line
// applications. A host program declares an [App] with a flat list of named
// subcommands and hands the process arguments to [App.Run], which dispatches
// the first token to the matching command's action.
//
// The package deliberately stays small: there is no flag parsing, no nested
// command tree and no built-in help flags. When the first token matches no
// registered command, or no token is supplied at all, Run prints the
// application's help text and returns.
package seahorse
