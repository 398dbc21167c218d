// Command roster manages a file-backed roster of student records.
package main

import (
	"os"

	"github.com/mesh-intelligence/roster/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
