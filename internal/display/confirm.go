package display

import (
	"fmt"
)

// ConfirmFunc asks the operator a yes/no question. Anything that is not an
// explicit yes means no.
type ConfirmFunc func(prompt string) bool

// TerminalConfirm prompts on stdout and reads the answer from stdin,
// defaulting to no.
func TerminalConfirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "yes"
}

// AutoApprove answers yes to every prompt. Bound when --yes is set.
func AutoApprove(string) bool {
	return true
}
