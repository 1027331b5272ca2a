package matcher

import (
	"fmt"
	"reflect"
	"strings"

	"comboselect/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Func decides whether an option is relevant to a typed query. It must be pure.
type Func func(opt domain.Option, query string) bool

// Policy names accepted by Named
const (
	PolicySubstring = "substring"
	PolicyPrefix    = "prefix"
	PolicyFuzzy     = "fuzzy"
)

// ConfigurationError reports a matcher override that cannot be used
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid matcher: " + e.Reason
}

// Substring matches query anywhere in the option text or alias, ignoring case
func Substring(opt domain.Option, query string) bool {
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(opt.Text), query) ||
		(opt.Alias != "" && strings.Contains(strings.ToLower(opt.Alias), query))
}

// Prefix matches when the option text or alias starts with query, ignoring case
func Prefix(opt domain.Option, query string) bool {
	query = strings.ToLower(query)
	return strings.HasPrefix(strings.ToLower(opt.Text), query) ||
		(opt.Alias != "" && strings.HasPrefix(strings.ToLower(opt.Alias), query))
}

// Fuzzy matches when the query characters appear in order in the text or alias
func Fuzzy(opt domain.Option, query string) bool {
	targets := []string{opt.Text}
	if opt.Alias != "" {
		targets = append(targets, opt.Alias)
	}
	return len(fuzzy.Find(query, targets)) > 0
}

var registry = map[string]Func{
	PolicySubstring: Substring,
	PolicyPrefix:    Prefix,
	PolicyFuzzy:     Fuzzy,
}

// Named returns the built-in policy with the given name. An empty name selects Substring.
func Named(name string) (Func, error) {
	if name == "" {
		return Substring, nil
	}
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown policy %q", name)}
	}
	return fn, nil
}

// Names lists the built-in policies
func Names() []string {
	return []string{PolicySubstring, PolicyPrefix, PolicyFuzzy}
}

var (
	funcType   = reflect.TypeOf(Func(nil))
	optionType = reflect.TypeOf(domain.Option{})
	stringType = reflect.TypeOf("")
	boolType   = reflect.TypeOf(true)
)

// FromValue validates a host-supplied matcher. The value must be a function
// taking exactly (domain.Option, string) and returning bool.
func FromValue(v any) (Func, error) {
	switch fn := v.(type) {
	case nil:
		return nil, &ConfigurationError{Reason: "matcher is nil"}
	case Func:
		if fn == nil {
			return nil, &ConfigurationError{Reason: "matcher is nil"}
		}
		return fn, nil
	case func(domain.Option, string) bool:
		if fn == nil {
			return nil, &ConfigurationError{Reason: "matcher is nil"}
		}
		return fn, nil
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()
	if rt.Kind() != reflect.Func {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("%s is not a function", rt)}
	}
	if rv.IsNil() {
		return nil, &ConfigurationError{Reason: "matcher is nil"}
	}
	if rt.IsVariadic() || rt.NumIn() != 2 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("matcher must accept exactly 2 arguments, %s accepts %d", rt, rt.NumIn())}
	}
	if rt.In(0) != optionType || rt.In(1) != stringType || rt.NumOut() != 1 || rt.Out(0) != boolType {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("matcher must be func(domain.Option, string) bool, got %s", rt)}
	}
	return rv.Convert(funcType).Interface().(Func), nil
}
