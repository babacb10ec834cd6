package cmd

import (
	"github.com/marcus/artside/internal/theme"
	"github.com/spf13/pflag"
)

// themeValue is a pflag.Value accepting only known theme names.
type themeValue struct {
	theme theme.Theme
}

func (v *themeValue) String() string {
	if v.theme == "" {
		return string(theme.Golden)
	}
	return string(v.theme)
}

func (v *themeValue) Set(s string) error {
	t, err := theme.Parse(s)
	if err != nil {
		return err
	}
	v.theme = t
	return nil
}

func (v *themeValue) Type() string { return "theme" }

var _ pflag.Value = (*themeValue)(nil)
