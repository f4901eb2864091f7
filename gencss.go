// Package gencss generates padding and margin utility classes from a
// JSON description of a spacing scale and responsive breakpoints.
//
// # Generation
//
// Read gencss.config.json and write gencss.css next to it:
//
//	result, err := gencss.Generate(gencss.Options{
//		ConfigPath: "./gencss.config.json",
//		Output:     "./",
//	})
//
// Each spacing step becomes one class per property family member
// (p, pt, px, ..., m, mt, mx, ...). Breakpoints with a non-zero width wrap
// their classes in a min-width media query.
//
// # Drift check
//
// Verify that a committed stylesheet still matches its config:
//
//	result, err := gencss.Check(opts)
//	if errors.Is(err, gencss.ErrDrift) {
//		// result.Changes lists missing, changed and unexpected rules
//	}
//
// # CLI Tool
//
// gencss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/gencss/cmd/gencss@latest
package gencss
