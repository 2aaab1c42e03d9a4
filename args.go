package main

import (
	"fmt"
	"strings"

	"dirinfo/internal/model"
)

const (
	flagRecursive = 'r'
	flagHelp      = 'h'
	flagVersion   = 'v'
)

const (
	argBriefDescription = "--brief-description"
	argUpdate           = "--update"
	argInteractive      = "--interactive"
	argServe            = "--serve"
)

// Arguments holds the parsed command line: the classified input paths plus
// the mode switches.
type Arguments struct {
	Paths            model.PathList
	ShowHelp         bool
	ShowVersion      bool
	Recursive        bool
	BriefDescription bool
	CheckUpdate      bool
	Interactive      bool
	Serve            bool
}

// ReadArguments parses argv (without the program name). Combined
// single-character flags are recognized only in the first argument and only
// when it starts with "-"; unknown characters are ignored. Long options are
// recognized anywhere. Everything else is a path; with no paths given the
// current directory is assumed. The path list comes back sorted.
func ReadArguments(argv []string) (*Arguments, error) {
	args := &Arguments{}

	for i, arg := range argv {
		switch arg {
		case argBriefDescription:
			args.BriefDescription = true
		case argUpdate:
			args.CheckUpdate = true
		case argInteractive:
			args.Interactive = true
		case argServe:
			args.Serve = true
		default:
			if i == 0 && strings.HasPrefix(arg, "-") {
				args.readFlagToken(arg)
			} else if err := args.Paths.Add(arg); err != nil {
				return nil, fmt.Errorf("couldn't add path %s: %w", arg, err)
			}
		}
	}

	if args.Paths.Size() == 0 {
		if err := args.Paths.Add("."); err != nil {
			return nil, fmt.Errorf("couldn't add current directory path: %w", err)
		}
	}

	args.Paths.Sort()
	return args, nil
}

func (a *Arguments) readFlagToken(token string) {
	for _, c := range token {
		switch c {
		case flagRecursive:
			a.Recursive = true
		case flagHelp:
			a.ShowHelp = true
		case flagVersion:
			a.ShowVersion = true
		}
	}
}
