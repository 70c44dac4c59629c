package fabricator

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/antithesishq/fabrikate-go/random"
)

type URIOption func(*uriOptions)

type uriOptions struct {
	text Fabricator[string]
}

// WithText replaces the default String fabricator used for the host label.
func WithText(text Fabricator[string]) URIOption {
	return func(o *uriOptions) {
		o.text = text
	}
}

func newURIOptions(src random.Source, opts []URIOption) *uriOptions {
	o := &uriOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.text == nil {
		o.text = newDefaultString(src)
	}
	return o
}

// URI fabricates https://<text>.com. The text is used as is, so its pool must already be
// safe in a host name; the default alphanumeric pool is.
type URI struct {
	text Fabricator[string]
}

func NewURI(src random.Source, opts ...URIOption) *URI {
	return &URI{text: newURIOptions(src, opts).text}
}

func (f *URI) Fabricate() *url.URL {
	return &url.URL{Scheme: "https", Host: f.text.Fabricate() + ".com"}
}

// URL fabricates https://<text>.com keeping only the letters and digits of the text, so the
// host is valid whatever pool the text was drawn from.
type URL struct {
	text Fabricator[string]
}

func NewURL(src random.Source, opts ...URIOption) *URL {
	return &URL{text: newURIOptions(src, opts).text}
}

func (f *URL) Fabricate() *url.URL {
	host := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, f.text.Fabricate())
	return &url.URL{Scheme: "https", Host: host + ".com"}
}
