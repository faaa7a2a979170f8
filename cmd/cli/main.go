// loggrep - timestamp-aware log search
//
// loggrep searches log files (or stdin) for patterns, like grep, but
// understands log timestamps: with a startup time set, only lines at or
// after that instant are searched.
package main

import (
	"os"

	"github.com/seanpor/loggrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
