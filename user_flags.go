package getflags

import (
	"fmt"

	"github.com/DavidGamba/go-getflags/internal/flagdef"
	"github.com/DavidGamba/go-getflags/text"
)

// ModifyFn - Signature for the functions that modify a flag at declaration time.
type ModifyFn func(parent *FlagSet, f *flagdef.Flag)

// Description - Add a description to a flag for use in automated help.
func (fset *FlagSet) Description(msg string) ModifyFn {
	return func(parent *FlagSet, f *flagdef.Flag) {
		f.SetDescription(msg)
	}
}

// ArgName - Change the help synopsis arg name from the kind default, for example from
// `<number>` to `<seconds>`.
func (fset *FlagSet) ArgName(name string) ModifyFn {
	return func(parent *FlagSet, f *flagdef.Flag) {
		f.SetHelpArgName(name)
	}
}

// NoShort - Declare the flag without a short form even when its first letter is free.
func (fset *FlagSet) NoShort() ModifyFn {
	return func(parent *FlagSet, f *flagdef.Flag) {
		f.NoShort = true
	}
}

// Bool - define a `bool` flag.
// It returns a `*bool` pointing to the variable holding the result.
// The result defaults to false and is set to true when the flag is passed.
func (fset *FlagSet) Bool(name string, fns ...ModifyFn) *bool {
	var b bool
	fset.BoolVar(&b, name, fns...)
	return &b
}

// BoolVar - define a `bool` flag.
// The result will be available through the variable marked by the given pointer.
func (fset *FlagSet) BoolVar(p *bool, name string, fns ...ModifyFn) {
	*p = false
	f := flagdef.New(name, flagdef.BoolKind, p)
	fset.addFlag(f)
	for _, fn := range fns {
		fn(fset, f)
	}
	fset.assignShort(f)
}

// Number - define a `number` flag.
// It returns a `*float64` pointing to the variable holding the result.
// The result defaults to 0. The flag reads the following token and accepts decimal
// integer and float syntax.
func (fset *FlagSet) Number(name string, fns ...ModifyFn) *float64 {
	var n float64
	fset.NumberVar(&n, name, fns...)
	return &n
}

// NumberVar - define a `number` flag.
// The result will be available through the variable marked by the given pointer.
func (fset *FlagSet) NumberVar(p *float64, name string, fns ...ModifyFn) {
	*p = 0
	f := flagdef.New(name, flagdef.NumberKind, p)
	fset.addFlag(f)
	for _, fn := range fns {
		fn(fset, f)
	}
	fset.assignShort(f)
}

// String - define a `string` flag.
// It returns a `*string` pointing to the variable holding the result.
// The result defaults to the empty string. The flag reads the following token verbatim.
func (fset *FlagSet) String(name string, fns ...ModifyFn) *string {
	var s string
	fset.StringVar(&s, name, fns...)
	return &s
}

// StringVar - define a `string` flag.
// The result will be available through the variable marked by the given pointer.
func (fset *FlagSet) StringVar(p *string, name string, fns ...ModifyFn) {
	*p = ""
	f := flagdef.New(name, flagdef.StringKind, p)
	fset.addFlag(f)
	for _, fn := range fns {
		fn(fset, f)
	}
	fset.assignShort(f)
}

// addFlag - Registers the flag in declaration order.
// Duplicate long names are not rejected, resolution picks the first declared.
func (fset *FlagSet) addFlag(f *flagdef.Flag) {
	if f.Name == "" {
		// Panic at declaration time because this is a programmer error.
		panic("Flag name can't be empty")
	}
	Logger.Printf("registering flag %s\n", f.Name)
	fset.flags = append(fset.flags, f)
}

// assignShort - Derive the short form from the first character of the long name.
// The first declared flag for a given letter wins, later ones are left without a short
// form. Auto assignment never overwrites an existing binding.
func (fset *FlagSet) assignShort(f *flagdef.Flag) {
	if fset.noAutoShort || f.NoShort {
		return
	}
	short := string([]rune(f.Name)[0])
	if taken, ok := fset.shortInUse[short]; ok {
		f.ShortDenied = true
		Logger.Printf("short form %s taken by %s, flag %s gets none\n", short, taken.Name, f.Name)
		return
	}
	f.Short = short
	fset.shortInUse[short] = f
}

// Validate - Optional strict pass to run once all flags are declared.
// Declarations never fail: duplicate long names coexist with resolution picking the
// first declared, and a flag whose derived short form is taken silently gets none.
// Validate surfaces both conditions as errors, first one found wins.
func (fset *FlagSet) Validate() error {
	seen := map[string]struct{}{}
	for _, f := range fset.flags {
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf(text.ErrorFlagDeclaredTwice+"%w", f.Name, ErrorFlagDeclaredTwice)
		}
		seen[f.Name] = struct{}{}
		if f.ShortDenied {
			short := string([]rune(f.Name)[0])
			return fmt.Errorf(text.ErrorShortCollision+"%w", short, f.Name, fset.shortInUse[short].Name, ErrorShortCollision)
		}
	}
	return nil
}
