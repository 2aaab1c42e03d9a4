package main

import (
	"fmt"
	"os"

	"dirinfo/internal/inspect"
	"dirinfo/internal/model"
	"dirinfo/internal/tui"
	"dirinfo/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tcnksm/go-latest"
)

func help(toolname string) {
	fmt.Printf("usage: %s [ -<flags> ] <path>\n", toolname)

	fmt.Printf("\nflags:\n")
	fmt.Printf("  [ %c ] : see help text\n", flagHelp)
	fmt.Printf("  [ %c ] : see version\n", flagVersion)
	fmt.Printf("  [ %c ] : recursive\n", flagRecursive)

	fmt.Printf("\nlong options:\n")
	fmt.Printf("  %s : one-line tool description\n", argBriefDescription)
	fmt.Printf("  %s : check for a newer release\n", argUpdate)
	fmt.Printf("  %s : browse a directory interactively\n", argInteractive)
	fmt.Printf("  %s : serve entry info as JSON on http://localhost:8080\n", argServe)

	fmt.Printf("\nentry types:\n")
	fmt.Printf("  %s - block device\n", model.EntryTypeBlockDevice)
	fmt.Printf("  %s - char device\n", model.EntryTypeCharDevice)
	fmt.Printf("  %s - directory\n", model.EntryTypeDirectory)
	fmt.Printf("  %s - fifo pipe\n", model.EntryTypeFifo)
	fmt.Printf("  %s - symbolic link file\n", model.EntryTypeSymlink)
	fmt.Printf("  %s - regular file\n", model.EntryTypeFile)
	fmt.Printf("  %s - socket\n", model.EntryTypeSocket)
	fmt.Printf("  %s - unknown\n", model.EntryTypeUnknown)

	fmt.Printf("\npermissions:\n")
	fmt.Printf("  <owner><group><other>\n")
}

func briefDescription() {
	fmt.Println("lists directory")
}

func printVersion() {
	fmt.Println(model.Version)
}

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "bdi-tools",
		Repository: "dirinfo",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("Download it from https://github.com/bdi-tools/dirinfo/releases")
	} else {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	args, err := ReadArguments(os.Args[1:])
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case args.ShowHelp:
		help(os.Args[0])
	case args.ShowVersion:
		printVersion()
	case args.BriefDescription:
		briefDescription()
	case args.CheckUpdate:
		checkUpdate(model.Version)
	case args.Serve:
		if err := web.StartServer(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case args.Interactive:
		runInteractive(args)
	default:
		lister := inspect.NewLister(&args.Paths, args.Recursive, os.Stdout)
		lister.Run()
	}
}

func runInteractive(args *Arguments) {
	// Start in the first directory argument, or the current directory when
	// the argument is a file.
	dir := "."
	if p, err := args.Paths.At(0); err == nil && !model.IsFilePath(p) {
		dir = p
	}

	m := tui.InitialModel(dir)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
