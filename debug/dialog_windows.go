package debug

import "github.com/sqweek/dialog"

func showFatal(message string) {
	dialog.Message("%s", message).Title("Critical Error").Error()
}

func showAlert(message string) {
	dialog.Message("%s", message).Title("Error").Error()
}
