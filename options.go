package tagsoup

import (
	"fmt"
	"strings"
)

type options struct {
	indent   string
	bareText bool
	charset  string
}

// Option configures parsing or formatting. Options that do not apply to
// the operation they are passed to are ignored.
type Option func(*options) error

func newOptions(opts []Option) (*options, error) {
	o := &options{indent: "\t"}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Indent formats output using n spaces per nesting level instead of the
// default single tab. The count n must not be negative.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("tagsoup: indent must not be negative")
		}
		o.indent = strings.Repeat(" ", n)
		return nil
	}
}

// AllowBareText permits rendering text nodes with no element open, useful
// when formatting fragments known to be pure text.
func AllowBareText() Option {
	return func(o *options) error {
		o.bareText = true
		return nil
	}
}

// Charset forces the input to be decoded with the named encoding instead
// of sniffing a BOM or charset declaration. The name is resolved the way
// browsers resolve charset labels, e.g. "utf-8" or "windows-1252".
func Charset(name string) Option {
	return func(o *options) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("tagsoup: charset name must not be empty")
		}
		o.charset = name
		return nil
	}
}
