// Command tscli reads two-column time series CSV files and prints summary
// statistics or derived series.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
