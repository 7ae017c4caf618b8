package domainsgen

import (
	"bytes"
	"fmt"
	"go/token"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"
)

// Options controls the names used in the generated file.
type Options struct {
	// Package is the package clause of the generated file. Default: freemail
	Package string
	// ListName is the identifier of the sorted domain array. Default: freeDomainList
	ListName string
	// SetName is the identifier of the membership set. Default: freeDomainSet
	SetName string
	// Source is the input label written into the header. Default: domains.json
	Source string
}

// DefaultOptions returns the options used by go:generate in this module.
func DefaultOptions() Options {
	return Options{
		Package:  "freemail",
		ListName: "freeDomainList",
		SetName:  "freeDomainSet",
		Source:   "domains.json",
	}
}

func (o Options) validate() error {
	for _, id := range []struct{ field, value string }{
		{"package", o.Package},
		{"list name", o.ListName},
		{"set name", o.SetName},
	} {
		if !token.IsIdentifier(id.value) {
			return fmt.Errorf("%s %q is not a valid Go identifier", id.field, id.value)
		}
	}
	if o.ListName == o.SetName {
		return fmt.Errorf("list and set share the name %q", o.ListName)
	}
	return nil
}

// Artifact is a rendered Go source file and the domains it embeds.
type Artifact struct {
	Domains []string
	Source  []byte
}

// Count returns the number of domains embedded in the artifact.
func (a Artifact) Count() int {
	return len(a.Domains)
}

var fileTemplate = template.Must(template.New("domains").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by domainsgen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.
//
// Total domains: {{len .Domains}}

package {{.Package}}

// {{.ListName}} holds every free email provider domain in byte-wise order.
var {{.ListName}} = [...]string{
{{- range .Domains}}
	{{quote .}},
{{- end}}
}

// {{.SetName}} is filled once during package initialization and only read afterwards.
var {{.SetName}} = func() map[string]struct{} {
	set := make(map[string]struct{}, len({{.ListName}}))
	for _, d := range {{.ListName}} {
		set[d] = struct{}{}
	}
	return set
}()
`))

// Render produces the Go source for domains, which must already be
// normalized. Each domain is written as a quoted Go string literal, so
// quotes, backslashes and control bytes survive a re-parse unchanged.
// Render performs no I/O.
func Render(domains []string, opts Options) (Artifact, error) {
	if err := opts.validate(); err != nil {
		return Artifact{}, &Error{Op: "validate options", Kind: KindRender, Err: err}
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Options
		Domains []string
	}{opts, domains})
	if err != nil {
		return Artifact{}, &Error{Op: "execute template", Kind: KindRender, Err: err}
	}

	src, err := imports.Process("", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return Artifact{}, &Error{Op: "format source", Kind: KindRender, Err: err}
	}

	return Artifact{Domains: domains, Source: src}, nil
}
