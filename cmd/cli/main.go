// logreport - Log Summary Report Generator
//
// logreport is a batch log analysis tool that extracts timestamped events
// from plain-text log files, groups them by message text, and writes a
// frequency and first/last-seen report as a spreadsheet or CSV.
package main

import (
	"os"

	"github.com/johnny-wiley/system-log-parser/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
