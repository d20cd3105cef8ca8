package executor

import (
	"context"
	"io"
)

// Executor runs external commands and blocks until they exit.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteWithInput(ctx context.Context, stdin io.Reader, name string, args ...string) (string, error)
}
