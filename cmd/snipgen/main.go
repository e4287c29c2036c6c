// snipgen generates code sample artifacts from documentation-comment
// fragments. See internal/snipgen for the CLI implementation.
package main

import (
	"os"

	"snipgen/internal/snipgen"
)

func main() {
	os.Exit(snipgen.Main())
}
