// Package dump reads the CMakeDebugger file that CMake writes into its binary
// directory and deserializes it into an immutable [State].
//
// # File Format
//
// The file is line oriented. The first [HeaderLines] lines are ignored. Two
// sections are delimited by literal sentinel lines:
//
//	# Serialized variables
//	CMAKE_BUILD_TYPE=Debug
//	# End serialized variables
//	# Serialized targets
//	++++app
//	app TYPE=EXECUTABLE
//	app SOURCES=main.c
//	----app
//	# End serialized targets
//
// A variable line is split at '=' into a name and a value. Only the text
// between the first and the second '=' is kept as the value; a line without
// '=' yields an empty value. Within the targets section every "++++<name>"
// line opens a target block that is closed by the matching "----<name>" line.
// Property lines carry the target name as a prefix.
//
// # Property Prefix
//
// By default the target name prefix is removed by trimming every leading
// character that occurs in the target name or is a space, so a property whose
// own name starts with such characters loses them as well. [WithLiteralPrefix]
// removes exactly "<name> " instead.
//
// # Usage
//
//	state, err := dump.Load(ctx, binaryDir)
//	if err != nil {
//		return err
//	}
//
//	if v, ok := state.Variable("CMAKE_BUILD_TYPE"); ok {
//		fmt.Println(v.Value)
//	}
//
//	for name, target := range state.Targets() {
//		fmt.Println(name, len(target.Properties))
//	}
package dump
