package modules

import "context"

// Module is a message processor the receiver dispatches incoming chat
// text to. Each module returns zero or more reply blocks.
type Module interface {
	Name() string
	ProcessMessage(ctx context.Context, text string, targetCodes []string) ([]string, error)
}
