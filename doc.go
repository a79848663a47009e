// File: lixenwraith/optconfig/doc.go

// Package optconfig resolves the options of a diff pager from layered sources:
// command-line arguments, named presets, the global section of a git-config
// style store, and compiled-in defaults.
//
// Features:
//   - Per-option precedence with presets, last listed preset wins
//   - User presets as store subsections ([delta "my-preset"])
//   - Builtin presets computing values from the store or other options
//   - Symbolic defaults redirecting an option to another store key
//   - Store formats: git config, TOML, YAML, JSON
//   - Source tracking to see where each value came from
//   - Builder pattern and pflag binding
//
// Quick Start:
//
//	res, err := optconfig.Quick("~/.gitconfig", "diff-so-fancy")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Options.MinusStyle)
//
// Precedence (highest to lowest):
//  1. Command-line arguments (--minus-style red)
//  2. Active presets, from the last listed to the first. For each preset:
//     a. the store key delta.<preset>.<option>
//     b. the builtin preset value function for the option
//     c. the builtin preset redirect key for the option
//  3. The store key delta.<option>
//  4. The compiled-in default
//
// Resolution Order:
// Builtin value functions may read options resolved before them. Options are
// resolved in struct declaration order, moved only as far as needed to come
// after the options they depend on.
//
// The store is read once per pass. A missing store file is not an error, a
// malformed one is.
package optconfig
