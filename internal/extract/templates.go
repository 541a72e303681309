package extract

import (
	"embed"
	"sort"
	"strings"

	"git.home.luguber.info/inful/assetkit/internal/config"
	ferrors "git.home.luguber.info/inful/assetkit/internal/foundation/errors"
)

//go:embed templates/*
var templateFS embed.FS

// Template is the fixed text wrapped around an extracted section.
type Template struct {
	Name     string
	Preamble string
	Epilogue string
}

var templateFiles = map[string][2]string{
	config.TemplateTodoJS:  {"templates/todo-js.preamble.js", "templates/todo-js.epilogue.js"},
	config.TemplateTodoCSS: {"templates/todo-css.preamble.css", ""},
}

// LookupTemplate returns the built-in template with the given name.
func LookupTemplate(name string) (Template, error) {
	files, ok := templateFiles[name]
	if !ok {
		return Template{}, ferrors.ValidationError("unknown section template").
			WithContext("template", name).
			WithContext("known", strings.Join(TemplateNames(), ", ")).
			Build()
	}
	tpl := Template{Name: name}
	var err error
	if tpl.Preamble, err = readTemplate(files[0]); err != nil {
		return Template{}, err
	}
	if tpl.Epilogue, err = readTemplate(files[1]); err != nil {
		return Template{}, err
	}
	return tpl, nil
}

// TemplateNames lists the built-in template names.
func TemplateNames() []string {
	names := make([]string, 0, len(templateFiles))
	for name := range templateFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func readTemplate(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryInternal, "embedded template missing").
			WithContext("path", path).
			Build()
	}
	return string(data), nil
}
