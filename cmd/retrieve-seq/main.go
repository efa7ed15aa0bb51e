// cmd/retrieve-seq/main.go
package main

import (
	"os"

	"github.com/mendelics/retrieveseq/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
