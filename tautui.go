package tautui

// TauTUI is the root namespace marker. It has no fields and no methods and
// exists so later additions have a stable symbol to attach to.
type TauTUI struct{}

// Version is the framework version. Release builds override it with
// -ldflags "-X github.com/steipete/tautui.Version=...".
var Version = "0.1.0-dev"
