// Package tautui is the root of the TauTUI terminal UI framework.
//
// The framework is organized into areas that grow around this package:
//
//   - Core: the runtime that owns the render loop and component tree.
//   - Terminal: terminal I/O and capability detection (see pkg/termcaps).
//   - Utilities: ANSI-aware text measurement and shaping (see pkg/textutil).
//   - Components: composable widgets built on Core.
//   - Autocomplete: completion providers for input components.
//
// This package holds the stable root namespace, [TauTUI], and static helpers
// shared by every area, such as the framework logger and its hooks:
//
//	remove := tautui.AddLogHook(func(e tautui.LogEntry) {
//	    fmt.Println(e.Level, e.Message)
//	})
//	defer remove()
//
// Importing the package has no side effects. Logging is silent until a
// logger, a hook, or a debug log is installed.
package tautui
