// Command derived reads text files and prints their contents, or an
// IO-Error line for each path that could not be read.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(2)
	}
}
