package getflags

import (
	"fmt"

	"github.com/DavidGamba/go-getflags/internal/argstream"
	"github.com/DavidGamba/go-getflags/internal/flagdef"
	"github.com/DavidGamba/go-getflags/text"
)

// Parse - Processes the given argument sequence, os.Args[1:] in the common case, and
// binds values into the declared flags' cells.
//
// Parsing is a single left to right pass and it is fail fast: the first error halts the
// scan and is returned. Values bound before the failing token remain written, so on
// error inspect the error instead of trusting the cells.
func (fset *FlagSet) Parse(args []string) error {
	Logger.Printf("parsing %v\n", args)
	iterator := argstream.New(args)

ARGS_LOOP:
	for iterator.Next() {
		tok, is := isFlag(iterator.Value())
		if !is {
			return fmt.Errorf(text.ErrorUnexpectedPositional+"%w", iterator.Value(), ErrorUnexpectedPositional)
		}

		if tok.Ignore {
			// Resolution of an ignored flag only determines whether a value token
			// follows, nothing is bound.
			f := fset.resolve(tok.Name)
			if f == nil {
				Logger.Printf("ignoring unresolved %s\n", tok.Name)
				if fset.greedyIgnore {
					if value, ok := iterator.PeekNextValue(); ok {
						if _, is := isFlag(value); !is {
							iterator.Next()
						}
					}
				}
				continue ARGS_LOOP
			}
			Logger.Printf("ignoring %s\n", f.Name)
			if f.ExpectsValue() && iterator.ExistsNext() {
				iterator.Next()
			}
			continue ARGS_LOOP
		}

		f := fset.resolve(tok.Name)
		if f == nil {
			return fmt.Errorf(text.ErrorUnknownFlag+"%w", tok.Name, ErrorUnknownFlag)
		}
		f.SetCalled(tok.Name)
		if !f.ExpectsValue() {
			err := f.Save()
			if err != nil {
				return err
			}
			continue ARGS_LOOP
		}
		if !iterator.ExistsNext() {
			return fmt.Errorf(text.ErrorMissingValue+"%w", f.UsedName, ErrorMissingValue)
		}
		value, _ := iterator.PeekNextValue()
		if _, is := isFlag(value); is {
			return fmt.Errorf(text.ErrorValueWithDash+"%w", f.UsedName, ErrorMissingValue)
		}
		iterator.Next()
		err := f.Save(iterator.Value())
		if err != nil {
			return err
		}
	}
	return nil
}

// resolve - Lookup first by exact long name in declaration order, then by short form.
func (fset *FlagSet) resolve(name string) *flagdef.Flag {
	for _, f := range fset.flags {
		if f.Name == name {
			return f
		}
	}
	if f, ok := fset.shortInUse[name]; ok {
		return f
	}
	return nil
}
