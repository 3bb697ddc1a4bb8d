// Command colorcompare compares the color analyses of two museum artworks.
package main

import "github.com/mesh-intelligence/colorcompare/internal/cli"

func main() {
	cli.Execute()
}
