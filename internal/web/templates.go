package web

import (
	"embed"
	"fmt"
	"html/template"
	"reflect"
	"strings"

	"ClubRoster/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"money": money,
	"date":  model.DateString,
	"label": label,
	"deref": deref,
}

// ParseTemplates parses the embedded page set.
func ParseTemplates() (*template.Template, error) {
	return template.New("pages").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}

// money renders a market value with thousands separators, e.g. $1,200,000.
func money(v float64) string {
	return message.NewPrinter(language.English).Sprintf("$%.0f", v)
}

// label turns an enum value like CENTER_BACK into "Center back".
func label(v interface{}) string {
	s := strings.ToLower(strings.ReplaceAll(fmt.Sprint(v), "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// deref reads optional fields; nil pointers render as the empty string.
func deref(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return v
	}
	if rv.IsNil() {
		return ""
	}
	return rv.Elem().Interface()
}

