//go:build !windows

package debug

// The engine only runs on Windows. Elsewhere the log is the only sink so
// the reporting paths stay testable without a desktop toolkit.

func showFatal(string) {}

func showAlert(string) {}
