// Package fynk is the entry point to the Fynk front end. An Engine combines
// the lexer and parser with logging, source limits and diagnostic sinks so
// that callers such as the command line tool and the playground server share
// one configuration.
//
// Basic usage:
//
//	engine := fynk.New(fynk.Options{})
//	prog, err := engine.Parse("main.fy", "x = 1 + 2;")
//	if err != nil {
//		if d, ok := diag.FromError(err); ok {
//			fmt.Println(d)
//		}
//	}
//
// Every run gets its own run id which is attached to all log lines it emits.
package fynk
