// Package repl implements the interactive command interpreter.
//
// A [Session] owns a parsed [dump.State] and executes one command line at a
// time, writing results to its output. Two front ends drive a session:
//
//   - [Run] is a plain read-dispatch-print loop over any [io.Reader]. An
//     interrupt or end of input while waiting for a line is treated as an
//     empty line, so only "exit" ends the loop.
//   - [RunTUI] is a terminal line editor with fuzzy completion and history.
//
// Commands:
//
//	var <name>                   print the value of a variable
//	listallvars                  print every variable as name=value
//	target <name> [<property>]   print a target's properties or one value
//	listalltargets               print every target name
//	help [<command>]             list commands or describe one ("?" works too)
//	exit                         end the session
package repl
