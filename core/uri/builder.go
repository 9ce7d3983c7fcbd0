// File: builder.go
// Title: Mutable URI Builder
// Description: Implements the field-based mutable URI: explicit scheme,
//              user-info, host, port, rooted flag, path elements, query
//              parameters, and fragment, with escape/unescape transforms
//              and usage-specific serialization.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package uri

import (
	"strings"

	perror "github.com/plinth-go/plinth/core/error"
	"github.com/plinth-go/plinth/core/text"
)

// Builder is the mutable counterpart of Uri, holding each component as
// an explicit field. The zero value serializes to the empty string.
// Builders are single-owner values; sharing one across goroutines
// requires external synchronization.
type Builder struct {
	scheme   string
	userInfo string
	host     string
	port     int // negative means no port
	rooted   bool
	elements []string
	params   []Param
	fragment string
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{port: -1}
}

// FromUri returns a builder populated from a parsed URI
func FromUri(u Uri) *Builder {
	b := NewBuilder()
	b.scheme = u.Scheme()
	b.userInfo = u.UserInfo()
	b.host = u.Host()
	b.port = u.Port()
	b.rooted = u.IsRooted()
	b.elements = u.PathElements()
	b.params = u.QueryParams()
	b.fragment = u.Fragment()
	return b
}

// Parse replaces the builder's contents with the parse of s. On failure
// the builder is left unchanged.
func (b *Builder) Parse(s text.String) error {
	u, err := Parse(s)
	if err != nil {
		return err
	}
	*b = *FromUri(u)
	return nil
}

// TryParse is Parse returning a success flag and a diagnostic instead
// of an error value.
func (b *Builder) TryParse(s text.String) (bool, string) {
	if err := b.Parse(s); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// Scheme returns the scheme field
func (b *Builder) Scheme() string { return b.scheme }

// SetScheme replaces the scheme. Invalid scheme text fails with
// URI_PARSE.
func (b *Builder) SetScheme(scheme string) error {
	if scheme != "" && !validScheme(scheme) {
		return perror.Newf("'%s' is not a valid URI scheme", scheme).
			WithCode(perror.CodeURIParse).
			WithOperation("uri.SetScheme")
	}
	b.scheme = scheme
	return nil
}

// UserInfo returns the user-info field
func (b *Builder) UserInfo() string { return b.userInfo }

// SetUserInfo replaces the user-info field
func (b *Builder) SetUserInfo(userInfo string) { b.userInfo = userInfo }

// Host returns the host field
func (b *Builder) Host() string { return b.host }

// SetHost replaces the host field
func (b *Builder) SetHost(host string) { b.host = host }

// Port returns the port field, negative when unset
func (b *Builder) Port() int { return b.port }

// SetPort replaces the port. Any negative value clears it; values past
// 65535 fail with VALUE_OUT_OF_RANGE.
func (b *Builder) SetPort(port int) error {
	if port > 65535 {
		return perror.Newf("port %d is outside 0..65535", port).
			WithCode(perror.CodeValueOutOfRange).
			WithOperation("uri.SetPort")
	}
	if port < 0 {
		port = -1
	}
	b.port = port
	return nil
}

// IsRooted returns the rooted-path flag
func (b *Builder) IsRooted() bool { return b.rooted }

// SetRooted replaces the rooted-path flag
func (b *Builder) SetRooted(rooted bool) { b.rooted = rooted }

// PathElements returns the path element list. The slice is the
// builder's own storage; callers must not retain it across mutations.
func (b *Builder) PathElements() []string { return b.elements }

// PushPathElement appends one path element
func (b *Builder) PushPathElement(element string) {
	b.elements = append(b.elements, element)
}

// ClearPath drops all path elements and the rooted flag
func (b *Builder) ClearPath() {
	b.elements = nil
	b.rooted = false
}

// QueryParams returns the query parameter list. The slice is the
// builder's own storage; callers must not retain it across mutations.
func (b *Builder) QueryParams() []Param { return b.params }

// AddQueryParam appends one query parameter
func (b *Builder) AddQueryParam(name, value string) {
	b.params = append(b.params, Param{Name: name, Value: value})
}

// ClearQuery drops all query parameters
func (b *Builder) ClearQuery() {
	b.params = nil
}

// Fragment returns the fragment field
func (b *Builder) Fragment() string { return b.fragment }

// SetFragment replaces the fragment field
func (b *Builder) SetFragment(fragment string) { b.fragment = fragment }

// Escape percent-encodes every component field in place. Already
// encoded bytes are decoded first so the transform is idempotent.
func (b *Builder) Escape() *Builder {
	b.userInfo = escape(unescape(b.userInfo), classUserInfo)
	b.host = escape(unescape(b.host), classHost)
	for i, el := range b.elements {
		b.elements[i] = escape(unescape(el), classPathElem)
	}
	for i, p := range b.params {
		b.params[i] = Param{
			Name:  escape(unescape(p.Name), classQueryFrag),
			Value: escape(unescape(p.Value), classQueryFrag),
		}
	}
	b.fragment = escape(unescape(b.fragment), classQueryFrag)
	return b
}

// Unescape decodes every well-formed escape sequence in every component
// field in place.
func (b *Builder) Unescape() *Builder {
	b.userInfo = unescape(b.userInfo)
	b.host = unescape(b.host)
	for i, el := range b.elements {
		b.elements[i] = unescape(el)
	}
	for i, p := range b.params {
		b.params[i] = Param{Name: unescape(p.Name), Value: unescape(p.Value)}
	}
	b.fragment = unescape(b.fragment)
	return b
}

// fieldFor renders one field for the given usage
func fieldFor(s string, class charClass, usage Usage) string {
	switch usage {
	case UsageEscaped:
		return escape(unescape(s), class)
	case UsageDisplay:
		return unescape(s)
	default:
		return s
	}
}

// render serializes the builder for the given usage, building the
// component spans while writing. Freezing never re-parses the rendered
// string: a Display rendering may contain bytes the parser would
// reject. A path following an authority is always rooted, so the host
// and the first element cannot merge.
func (b *Builder) render(usage Usage) (string, components) {
	var sb strings.Builder
	comp := components{
		scheme: noSpan, userInfo: noSpan, host: noSpan, port: -1,
		path: noSpan, query: noSpan, fragment: noSpan,
	}
	mark := func(sp *span, rendered string) {
		sp.off = sb.Len()
		sp.length = len(rendered)
		sb.WriteString(rendered)
	}

	if b.scheme != "" {
		mark(&comp.scheme, b.scheme)
		sb.WriteByte(':')
	}
	hasAuthority := b.host != "" || b.userInfo != "" || b.port >= 0
	if hasAuthority {
		sb.WriteString("//")
		if b.userInfo != "" {
			mark(&comp.userInfo, fieldFor(b.userInfo, classUserInfo, usage))
			sb.WriteByte('@')
		}
		mark(&comp.host, fieldFor(b.host, classHost, usage))
		if b.port >= 0 {
			sb.WriteByte(':')
			sb.WriteString(portString(b.port))
			comp.port = b.port
		}
	}
	rooted := b.rooted || (hasAuthority && len(b.elements) > 0)
	if len(b.elements) > 0 || rooted {
		pathStart := sb.Len()
		for i, el := range b.elements {
			if i > 0 || rooted {
				sb.WriteByte('/')
			}
			sb.WriteString(fieldFor(el, classPathElem, usage))
		}
		if len(b.elements) == 0 {
			sb.WriteByte('/')
		}
		comp.path = span{off: pathStart, length: sb.Len() - pathStart}
	}
	if len(b.params) > 0 {
		sb.WriteByte('?')
		queryStart := sb.Len()
		for i, p := range b.params {
			if i > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(fieldFor(p.Name, classQueryFrag, usage))
			if p.Value != "" {
				sb.WriteByte('=')
				sb.WriteString(fieldFor(p.Value, classQueryFrag, usage))
			}
		}
		comp.query = span{off: queryStart, length: sb.Len() - queryStart}
	}
	if b.fragment != "" {
		sb.WriteByte('#')
		mark(&comp.fragment, fieldFor(b.fragment, classQueryFrag, usage))
	}
	return sb.String(), comp
}

// String serializes the builder for the given usage. An all-empty
// builder yields the empty string.
func (b *Builder) String(usage Usage) string {
	rendered, _ := b.render(usage)
	return rendered
}

// Uri freezes the builder into an immutable Uri normalized for the
// given usage.
func (b *Builder) Uri(usage Usage) (Uri, error) {
	rendered, comp := b.render(usage)
	if rendered == "" {
		return Uri{usage: usage}, nil
	}
	s, err := text.New(rendered)
	if err != nil {
		return Uri{}, perror.Wrap(err, "serializing URI").
			WithCode(perror.CodeInternal).
			WithOperation("uri.Builder")
	}
	return Uri{source: s, usage: usage, comp: comp}, nil
}
