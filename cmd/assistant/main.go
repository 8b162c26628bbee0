// Command assistant is an interactive contact book.
package main

import "github.com/mesh-intelligence/assistant/internal/cli"

func main() {
	cli.Execute()
}
