package commands

import (
	"flag"
	"fmt"
)

// VersionCmd is an initialized Version command for the main() command list
var VersionCmd = Version{}

// Version displays the CLI version information.
type Version struct {
}

func (c *Version) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("version", flag.ExitOnError)
}

func (c *Version) Execute(options *Options) error {
	fmt.Printf("%s\n", VERSION)

	return nil
}

func (c *Version) Name() string {
	return "version"
}

func (c *Version) Description() string {
	return "Displays the current version"
}

func (c *Version) Usage() string {
	return ""
}

func (c *Version) Help() {
	fmt.Printf("Displays the %s version in the format v<major>.<minor> e.g. %s\n", APP, VERSION)
	fmt.Println()
}
