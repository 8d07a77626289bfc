package token

type tokenOpts struct {
	comments   bool
	whitespace bool
}

type TokenOpt func(*tokenOpts)

// IncludeComments keeps TLineComment and TMultiComment tokens.
func IncludeComments(v bool) TokenOpt {
	return func(o *tokenOpts) { o.comments = v }
}

// IncludeWhitespace keeps TSpace tokens.
func IncludeWhitespace(v bool) TokenOpt {
	return func(o *tokenOpts) { o.whitespace = v }
}

func (o *tokenOpts) keep(t TokenType) bool {
	switch t {
	case TLineComment, TMultiComment:
		return o.comments
	case TSpace:
		return o.whitespace
	default:
		return true
	}
}
