package main

import "github.com/spf13/pflag"

// addColumnFlag attaches the shared CSV column selector.
func addColumnFlag(fs *pflag.FlagSet) {
	fs.Int("column", 0, "Zero-based CSV column holding the series")
}
