package binary

import (
	"strings"
	"text/template"
)

const (
	// FilenameFormat is the naming convention of upstream release assets.
	FilenameFormat = "hugo_{{if .Extended}}extended_{{end}}{{.Version}}_{{.OS}}-{{.Arch}}.{{.Ext}}"
	// URLFormat is where an asset is downloaded from, relative to the release base.
	URLFormat = "{{.Base}}download/v{{.Version}}/{{.Filename}}"
)

// Template contains the values an asset name or URL is rendered from.
type Template struct {
	// Base is the release host base path, ending with a slash.
	Base string
	// Version as published upstream, e.g. "0.55.0"
	Version string
	// OS label used by upstream for the target, e.g. "Linux", "macOS"
	OS string
	// Arch label used by upstream for the target, e.g. "64bit", "amd64"
	Arch string
	// Extended selects the build with the additional sass support.
	Extended bool
	// Ext is the archive extension without dot, "zip" or "tar.gz".
	Ext string
	// Filename is the resolved asset filename; set once rendered.
	Filename string
}

// Resolve executes the provided format string as a template with the Template's fields.
// It returns the resolved string and any error that occurred during template parsing or execution.
func (t Template) Resolve(format string) (string, error) {
	tmpl, err := template.New("asset").Option("missingkey=error").Parse(format)
	if err != nil {
		return "", err
	}

	var bld strings.Builder
	if err := tmpl.Execute(&bld, t); err != nil {
		return "", err
	}

	return bld.String(), nil
}

// MustResolve executes the provided format string as a template with the Template's fields.
// Panics if the template can't be resolved correctly.
func (t Template) MustResolve(format string) string {
	resolved, err := t.Resolve(format)
	if err != nil {
		panic(err)
	}
	return resolved
}
