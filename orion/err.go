package orion

import (
	"fmt"
	"log/slog"
	"os"
)

var exit = os.Exit

// Handle logs err and terminates the process with exit code 1
// if err is not nil.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		slog.Error(fmt.Sprintf(desc, args...), slog.Any("err", err))
		exit(1)
	}
}
