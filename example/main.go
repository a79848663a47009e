// FILE: lixenwraith/optconfig/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/optconfig"
)

const gitConfig = `[color "diff"]
	old = red bold
	new = green bold
[delta]
	minus-style = blue
	max-line-distance = 0.3
[delta "my-preset"]
	plus-style = yellow
	tabs = 8
`

func main() {
	dir, err := os.MkdirTemp("", "optconfig-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config")
	if err := os.WriteFile(path, []byte(gitConfig), 0644); err != nil {
		log.Fatal(err)
	}

	// Global section only
	res, err := optconfig.Quick(path, "")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("minus-style:", res.Options.MinusStyle)

	// diff-highlight reads color.diff.old, the user preset overrides plus-style
	res, err = optconfig.NewBuilder().
		WithFile(path).
		WithPresets("diff-highlight my-preset").
		Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(res.Debug())

	if err := res.Dump(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
