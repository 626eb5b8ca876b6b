package config

import (
	"fmt"
	"strings"
)

// RenderDefaultTOML produces a commented config.toml with every option
// at its default. Dotted keys become TOML tables, so "window.width"
// lands under a [window] header.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# mdview configuration (TOML)\n")

	var sectionOrder []string
	sections := map[string][]ConfigOption{}
	for _, o := range GetConfigOptions() {
		section, key, ok := strings.Cut(o.Key, ".")
		if !ok {
			section, key = "", o.Key
		}
		if _, seen := sections[section]; !seen {
			sectionOrder = append(sectionOrder, section)
		}
		o.Key = key
		sections[section] = append(sections[section], o)
	}

	for _, section := range sectionOrder {
		if section != "" {
			b.WriteString("[" + section + "]\n")
		}
		for _, o := range sections[section] {
			if o.Comment != "" {
				b.WriteString("# " + o.Comment + "\n")
			}
			switch v := o.Default.(type) {
			case string:
				fmt.Fprintf(&b, "%s = %q\n\n", o.Key, v)
			default:
				fmt.Fprintf(&b, "%s = %v\n\n", o.Key, v)
			}
		}
	}
	return b.String()
}
