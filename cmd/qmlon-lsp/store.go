package main

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/parse"
	"github.com/signadot/qmlon/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an immutable analysis of one version of a text document.
type document struct {
	uri     string
	content string
	version int32

	// tokens holds every token, comments and whitespace included, up to
	// the first syntax error.
	tokens []token.Token
	// value is nil when parsing failed, with err saying why.
	value     *ir.Value
	positions *parse.Positions
	err       error
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[string]*document)}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := analyze(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func analyze(uri, content string, version int32) *document {
	doc := &document{uri: uri, content: content, version: version}
	tz := token.NewTokenizer(strings.NewReader(content),
		token.IncludeComments(true),
		token.IncludeWhitespace(true))
	for {
		tok, err := tz.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				doc.err = err
			}
			break
		}
		doc.tokens = append(doc.tokens, tok)
	}
	doc.positions = parse.NewPositions()
	v, err := parse.ParseString(content, parse.ParsePositions(doc.positions))
	if err != nil {
		doc.err = err
		return doc
	}
	doc.value = v
	return doc
}

// rootType is the type of the document's root object, from the parse when
// there is one and otherwise from the first identifier.
func (doc *document) rootType() string {
	if doc.value != nil {
		if doc.value.IsObject() {
			return doc.value.Obj.Type
		}
		return ""
	}
	for _, tok := range doc.tokens {
		switch tok.Type {
		case token.TSpace, token.TLineComment, token.TMultiComment:
			continue
		case token.TIdent:
			return tok.Text
		}
		return ""
	}
	return ""
}

// significant returns the tokens which are neither comments nor whitespace.
func (doc *document) significant() []token.Token {
	res := make([]token.Token, 0, len(doc.tokens))
	for _, tok := range doc.tokens {
		if tok.Type == token.TSpace || tok.Type.IsComment() {
			continue
		}
		res = append(res, tok)
	}
	return res
}
