package gitlab

import (
	"fmt"
	"net/url"
	"strconv"

	appErrors "github.com/mrz1836/go-gitlab-repo/internal/errors"
)

// Form builds the ordered parameter set for a single API request.
//
// Parameters are kept in the order they are added so that encoded requests
// are deterministic. Optional parameters whose values are nil or empty are
// omitted entirely rather than sent as empty strings. A required parameter
// with a missing value poisons the form: Err returns a missing-parameter
// error and callers must not dispatch the request.
type Form struct {
	params []formParam
	err    error
}

type formParam struct {
	name  string
	value string
}

// NewForm creates an empty parameter form
func NewForm() *Form {
	return &Form{}
}

// WithParam adds an optional parameter. Nil or empty values are dropped.
func (f *Form) WithParam(name string, value interface{}) *Form {
	return f.withParam(name, value, false)
}

// WithRequiredParam adds a parameter that must have a non-empty value.
// A missing value records an error retrievable via Err; the first error
// recorded wins.
func (f *Form) WithRequiredParam(name string, value interface{}) *Form {
	return f.withParam(name, value, true)
}

func (f *Form) withParam(name string, value interface{}, required bool) *Form {
	s, ok := formValue(value)
	if !ok {
		if required && f.err == nil {
			f.err = appErrors.RequiredFieldError(name)
		}
		return f
	}
	f.params = append(f.params, formParam{name: name, value: s})
	return f
}

// Err reports the first required-parameter violation, or nil if the form
// is valid. Operations check this before any request is issued.
func (f *Form) Err() error {
	if f == nil {
		return nil
	}
	return f.err
}

// Empty reports whether the form carries no parameters
func (f *Form) Empty() bool {
	return f == nil || len(f.params) == 0
}

// Values returns the parameters as url.Values for wire encoding
func (f *Form) Values() url.Values {
	values := url.Values{}
	if f == nil {
		return values
	}
	for _, p := range f.params {
		values.Add(p.name, p.value)
	}
	return values
}

// Encode renders the parameters in insertion order as
// application/x-www-form-urlencoded data. url.Values.Encode sorts by key,
// so the ordered slice is encoded directly here.
func (f *Form) Encode() string {
	if f == nil {
		return ""
	}
	var buf []byte
	for i, p := range f.params {
		if i > 0 {
			buf = append(buf, '&')
		}
		buf = append(buf, url.QueryEscape(p.name)...)
		buf = append(buf, '=')
		buf = append(buf, url.QueryEscape(p.value)...)
	}
	return string(buf)
}

// formValue converts a parameter value to its canonical string form.
// The second return is false when the value is absent and the parameter
// should be omitted.
func formValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case *string:
		if v == nil {
			return "", false
		}
		return *v, *v != ""
	case bool:
		return strconv.FormatBool(v), true
	case *bool:
		if v == nil {
			return "", false
		}
		return strconv.FormatBool(*v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case *int:
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
