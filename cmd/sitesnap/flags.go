package main

import (
	"flag"
	"strings"

	"sitesnap/internal/domain/entity"
	"sitesnap/internal/errors"
)

// listFlag collects a repeatable flag, also splitting on commas.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}

	return nil
}

// attrFlag parses repeated -attr "Scent=Lavender|Rose" pairs.
type attrFlag []entity.ProductAttribute

func (a *attrFlag) String() string {
	parts := make([]string, 0, len(*a))
	for _, attr := range *a {
		parts = append(parts, attr.Name+"="+strings.Join(attr.Values, "|"))
	}

	return strings.Join(parts, ",")
}

func (a *attrFlag) Set(value string) error {
	name, values, ok := strings.Cut(value, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return errors.Errorf("attribute %q must look like Name=value1|value2", value)
	}

	attr := entity.ProductAttribute{Name: name, Values: []string{}}
	for _, v := range strings.Split(values, "|") {
		if v = strings.TrimSpace(v); v != "" {
			attr.Values = append(attr.Values, v)
		}
	}
	*a = append(*a, attr)

	return nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return set
}

// requireID reads the mandatory -id flag.
func requireID(fs *flag.FlagSet, id string) (string, error) {
	if id == "" {
		return "", errors.Errorf("%s: -id is required", fs.Name())
	}

	return id, nil
}
