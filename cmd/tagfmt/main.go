// Command tagfmt pretty-prints loosely-formed markup. It reads files (or
// stdin) and writes consistently indented markup to stdout, a file, or
// back in place.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/nkirkeby/go-tagsoup"
)

func main() {
	var (
		write       bool
		indent      int
		outPath     string
		charset     string
		bareText    bool
		fallbackRaw bool
	)

	flags := pflag.NewFlagSet("tagfmt", pflag.ExitOnError)
	flags.BoolVarP(&write, "write", "w", false, "Write result back to the source file instead of stdout")
	flags.IntVarP(&indent, "indent", "i", -1, "Indent with n spaces instead of tabs")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&charset, "charset", "", "Force input charset instead of sniffing")
	flags.BoolVar(&bareText, "text", false, "Allow formatting fragments that are pure text")
	flags.BoolVar(&fallbackRaw, "fallback-raw", false, "Pass input through unchanged when it is not markup")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tagfmt [flags] [files...]")
		fmt.Fprintln(os.Stderr, "\nIf no file is provided, markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	var opts []tagsoup.Option
	if indent >= 0 {
		opts = append(opts, tagsoup.Indent(indent))
	}
	if charset != "" {
		opts = append(opts, tagsoup.Charset(charset))
	}
	if bareText {
		opts = append(opts, tagsoup.AllowBareText())
	}

	args := flags.Args()
	if len(args) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			flags.Usage()
			os.Exit(2)
		}
		if write {
			fmt.Fprintln(os.Stderr, "tagfmt: -w requires file arguments")
			os.Exit(2)
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tagfmt: read stdin: %v\n", err)
			os.Exit(1)
		}
		out, err := format(data, opts, fallbackRaw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tagfmt: %v\n", err)
			os.Exit(1)
		}
		if err := emit(outPath, out); err != nil {
			fmt.Fprintf(os.Stderr, "tagfmt: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if write && outPath != "" {
		fmt.Fprintln(os.Stderr, "tagfmt: -w and -o are mutually exclusive")
		os.Exit(2)
	}

	status := 0
	for _, path := range args {
		if err := formatFile(path, write, outPath, opts, fallbackRaw); err != nil {
			fmt.Fprintf(os.Stderr, "tagfmt: %s: %v\n", path, err)
			status = 1
		}
	}
	os.Exit(status)
}

func formatFile(path string, write bool, outPath string, opts []tagsoup.Option, fallbackRaw bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := format(data, opts, fallbackRaw)
	if err != nil {
		return err
	}
	if write {
		return os.WriteFile(path, []byte(out), 0o644)
	}
	return emit(outPath, out)
}

// format parses and pretty-prints one input. When the input is not markup
// at all, fallbackRaw passes it through unchanged.
func format(data []byte, opts []tagsoup.Option, fallbackRaw bool) (string, error) {
	doc, err := tagsoup.Parse(data, opts...)
	if err != nil {
		var perr *tagsoup.ParseError
		if errors.As(err, &perr) && fallbackRaw {
			return string(data), nil
		}
		return "", err
	}
	return tagsoup.Format(doc, opts...)
}

func emit(outPath, out string) error {
	if outPath == "" {
		_, err := io.WriteString(os.Stdout, out)
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
