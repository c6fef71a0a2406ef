package markup

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

// Attr is one element attribute as written in the markup.
type Attr struct {
	Name  string
	Value string
}

// Attributes keeps attributes in document order.
type Attributes []Attr

// Get returns the value of the first attribute called name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether an attribute called name is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Handler receives parse events in document order.
type Handler interface {
	StartElement(name string, attrs Attributes) error
	CharData(text string) error
	EndElement(name string) error
}

// Tokenizer turns markup into Handler calls. Any error it returns, other
// than one produced by the handler itself, aborts the conversion.
type Tokenizer interface {
	Tokenize(markup string, h Handler) error
}

// HTMLTokenizer is the default Tokenizer. It reads markup the way a
// browser reads tag soup: unclosed elements close at the end of input,
// end tags without a matching start are dropped, a lone "<" is text and
// HTML entities resolve. The line-break element and the HTML void
// elements never take children, so <lf> and <lf/> are the same.
type HTMLTokenizer struct{}

// voidElements close as soon as they open.
var voidElements = func() map[string]bool {
	m := map[string]bool{LineBreakElement: true}
	for _, name := range xml.HTMLAutoClose {
		m[name] = true
	}
	return m
}()

// Tokenize scans markup with golang.org/x/net/html and balances the
// element events it reports.
func (HTMLTokenizer) Tokenize(markup string, h Handler) error {
	z := html.NewTokenizer(strings.NewReader(markup))
	z.AllowCDATA(true)

	var open []string
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return errors.Wrap(err, errors.ErrTokenize, "failed to parse markup").
					WithDetail("length", len(markup))
			}
			for i := len(open) - 1; i >= 0; i-- {
				if err := h.EndElement(open[i]); err != nil {
					return err
				}
			}
			return nil

		case html.TextToken:
			if text := z.Token().Data; text != "" {
				if err := h.CharData(text); err != nil {
					return err
				}
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			// Child elements of <title>, <textarea> and friends are markup
			// too, not raw text.
			z.NextIsNotRawText()
			tok := z.Token()
			attrs := make(Attributes, 0, len(tok.Attr))
			for _, a := range tok.Attr {
				attrs = append(attrs, Attr{Name: a.Key, Value: a.Val})
			}
			if err := h.StartElement(tok.Data, attrs); err != nil {
				return err
			}
			if tt == html.StartTagToken && !voidElements[tok.Data] {
				open = append(open, tok.Data)
				continue
			}
			if err := h.EndElement(tok.Data); err != nil {
				return err
			}

		case html.EndTagToken:
			name := z.Token().Data
			at := lastIndex(open, name)
			if at < 0 {
				continue
			}
			for len(open) > at {
				top := open[len(open)-1]
				open = open[:len(open)-1]
				if err := h.EndElement(top); err != nil {
					return err
				}
			}
		}
		// Comments, doctypes and processing instructions carry no text.
	}
}

func lastIndex(stack []string, name string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			return i
		}
	}
	return -1
}

// XMLTokenizer parses markup as a well-formed XML fragment with etree and
// rejects anything else with TOKENIZE. Bare attributes and stray
// ampersands are still accepted and HTML entities resolve.
type XMLTokenizer struct{}

// Tokenize parses markup with etree and replays the document as events.
func (XMLTokenizer) Tokenize(markup string, h Handler) error {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	doc.ReadSettings.Entity = xml.HTMLEntity

	if err := doc.ReadFromString(markup); err != nil {
		return errors.Wrap(err, errors.ErrTokenize, "failed to parse markup").
			WithDetail("length", len(markup))
	}
	return replay(doc.Child, h)
}

func replay(tokens []etree.Token, h Handler) error {
	for _, tok := range tokens {
		switch t := tok.(type) {
		case *etree.Element:
			attrs := make(Attributes, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Name: a.Key, Value: a.Value})
			}
			if err := h.StartElement(t.Tag, attrs); err != nil {
				return err
			}
			if err := replay(t.Child, h); err != nil {
				return err
			}
			if err := h.EndElement(t.Tag); err != nil {
				return err
			}
		case *etree.CharData:
			if t.Data == "" {
				continue
			}
			if err := h.CharData(t.Data); err != nil {
				return err
			}
		}
	}
	return nil
}
