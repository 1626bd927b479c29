package adapters

import "context"

// Guard returns an ExecutorAdapter that runs check before handing a command
// to next. A rejected command never reaches the shell; the check's error is
// returned as a start failure.
func Guard(next ExecutorAdapter, check func(command string) error) ExecutorAdapter {
	return ExecutorFunc(func(ctx context.Context, command string) (ExecResult, error) {
		if err := check(command); err != nil {
			return ExecResult{ExitCode: -1}, err
		}
		return next.Run(ctx, command)
	})
}
