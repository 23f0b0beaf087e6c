package getflags

import (
	"github.com/DavidGamba/go-getflags/internal/flagdef"
	"github.com/DavidGamba/go-getflags/internal/help"
)

// HelpSection - Indicates what portion of the help to return.
type HelpSection int

// Help Output Types
const (
	helpDefaultName HelpSection = iota
	HelpName
	HelpSynopsis
	HelpOptionList
)

// Help - Default help string that is composed of all available sections.
// Pass sections to get a partial help string, for example only the synopsis after a
// parse error.
func (fset *FlagSet) Help(sections ...HelpSection) string {
	if len(sections) == 0 {
		// Print all in the following order
		sections = []HelpSection{helpDefaultName, HelpSynopsis, HelpOptionList}
	}

	flags := make([]*flagdef.Flag, len(fset.flags))
	copy(flags, fset.flags)
	flagdef.Sort(flags)

	helpTxt := ""
	for _, section := range sections {
		switch section {
		// Default name only prints the name line when a description is set.
		// The explicit section always prints it.
		case helpDefaultName:
			if fset.description != "" {
				helpTxt += help.Name(fset.name, fset.description)
				helpTxt += "\n"
			}
		case HelpName:
			helpTxt += help.Name(fset.name, fset.description)
			helpTxt += "\n"
		case HelpSynopsis:
			helpTxt += help.Synopsis(fset.name, flags)
			helpTxt += "\n"
		case HelpOptionList:
			helpTxt += help.OptionList(flags)
		}
	}
	return helpTxt
}
