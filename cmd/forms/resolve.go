package main

import (
	"fmt"
	"strconv"
	"strings"

	forms "github.com/formkit/go-forms"
)

// runResolve implements the resolve subcommand: load the layout, apply
// any root size overrides, and print the resolved tree.
func runResolve(args []string) error {
	width, height := -1, -1
	var path string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-w":
			i++
			v, err := intArg(args, i, "-w")
			if err != nil {
				return err
			}
			width = v
		case "-h":
			i++
			v, err := intArg(args, i, "-h")
			if err != nil {
				return err
			}
			height = v
		default:
			if path != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			path = args[i]
		}
	}
	if path == "" {
		return fmt.Errorf("no layout file specified")
	}

	root, err := forms.LoadFile(path)
	if err != nil {
		return err
	}
	if width >= 0 {
		if err := root.SetWidth(width); err != nil {
			return err
		}
	}
	if height >= 0 {
		if err := root.SetHeight(height); err != nil {
			return err
		}
	}

	root.Walk(func(n *forms.Node, depth int) {
		b := n.AbsoluteBounds()
		name := n.Name()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%s%-20s x=%-5d y=%-5d w=%-5d h=%d\n",
			strings.Repeat("  ", depth), name, b.X, b.Y, b.Width, b.Height)
	})
	return nil
}

func intArg(args []string, i int, flag string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s requires a value", flag)
	}
	v, err := strconv.Atoi(args[i])
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s requires a non-negative integer, got %q", flag, args[i])
	}
	return v, nil
}
