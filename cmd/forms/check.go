package main

import (
	"fmt"

	forms "github.com/formkit/go-forms"
)

// runCheck implements the check subcommand: load and resolve the layout,
// reporting configuration errors without printing geometry.
func runCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check takes exactly one layout file")
	}
	root, err := forms.LoadFile(args[0])
	if err != nil {
		return err
	}

	nodes := 0
	root.Walk(func(*forms.Node, int) { nodes++ })
	fmt.Printf("%s: ok (%d nodes)\n", args[0], nodes)
	return nil
}
