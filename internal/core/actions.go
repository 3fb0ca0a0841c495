package core

import "errors"

// Sentinel errors for the failure taxonomy. Operation boundaries match on
// these with errors.Is and convert them to user-facing notifications; they
// never escape as uncaught faults.
var (
	ErrNotConfigured = errors.New("github token not configured")
	ErrUpstreamFetch = errors.New("failed to fetch from github")
	ErrContextGather = errors.New("failed to gather review context")
	ErrUserCancelled = errors.New("cancelled by user")
)

// DeliveryMethod is how a rendered review prompt leaves the tool.
type DeliveryMethod string

const (
	DeliverCLI       DeliveryMethod = "cli"       // hand off to an external assistant CLI
	DeliverClipboard DeliveryMethod = "clipboard" // copy the prompt for manual pasting
	DeliverStdout    DeliveryMethod = "stdout"    // print the prompt and stop
)

// ParseDeliveryMethod validates a user-supplied method name.
func ParseDeliveryMethod(s string) (DeliveryMethod, bool) {
	switch DeliveryMethod(s) {
	case DeliverCLI, DeliverClipboard, DeliverStdout:
		return DeliveryMethod(s), true
	}
	return "", false
}

// NotifyAction is the enumerated outcome of a user-facing notification.
// Prompt primitives return one of these instead of comparing button labels.
type NotifyAction int

const (
	ActionNone NotifyAction = iota
	ActionOpenPR
	ActionOpenList
	ActionOpenSettings
)
