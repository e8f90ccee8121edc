package mathematics

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal, including inf and NaN.
	tokenNum
	// tokenIdent is a variable, constant, or function name.
	tokenIdent
	// tokenOp is an operator, including the equals sign.
	tokenOp
	// tokenOpen is an open bracket, e.g. (.
	tokenOpen
	// tokenClose is a close bracket, e.g. ).
	tokenClose
	// tokenSep is the function argument separator ,.
	tokenSep
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

// Operators lists every operator rune: the arithmetic operators with their
// typographic spellings, and the = that separates the sides of an equation.
const Operators = "+-*/^=×÷"

// OpenBrackets and CloseBrackets list the bracket runes. The rune at index k of
// one pairs with the rune at index k of the other; a group opened with one
// kind of bracket must close with the same kind.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// brackets holds each pair of OpenBrackets and CloseBrackets as token text.
var brackets = [len(OpenBrackets)]struct{ open, close string }{
	{"(", ")"},
	{"[", "]"},
	{"{", "}"},
}

// numEnd lists the runes that end a number literal without being part of it.
const numEnd = Operators + OpenBrackets + CloseBrackets + ","

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the 1-based column of the next rune to read.
	col int
	// pushed holds unread tokens. The last element is returned first.
	pushed []lexToken
	eof    bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src, col: 1}
}

// push unreads a token. Pushed tokens come back out of next in LIFO order, so
// a caller restoring several tokens pushes them last to first.
func (l *lexer) push(tok lexToken) {
	if tok.kind == tokenNone {
		panic("mathematics: push of empty token")
	}
	l.pushed = append(l.pushed, tok)
}

// must pops the last pushed token. Panics if nothing is pushed.
func (l *lexer) must() lexToken {
	n := len(l.pushed)
	if n == 0 {
		panic("mathematics: no pushed token")
	}
	tok := l.pushed[n-1]
	l.pushed = l.pushed[:n-1]
	return tok
}

func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune puts back the rune just read. Panics if the source refuses.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next returns the next token. Pushed tokens are returned before any new input
// is read. Leading whitespace is skipped, except that a whitespace rune listed
// in wseof ends the input. The end of input produces one EOF token; reading
// past it gives io.EOF unless the EOF token was pushed back.
func (l *lexer) next(wseof string) (lexToken, error) {
	if len(l.pushed) != 0 {
		return l.must(), nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.col}
	for {
		r, err := l.readRune()
		if errors.Is(err, io.EOF) {
			tok.kind = tokenEOF
			l.eof = true
			return tok, nil
		}
		if err != nil {
			return tok, err
		}
		if !unicode.IsSpace(r) {
			return l.token(tok, r)
		}
		if strings.ContainsRune(wseof, r) {
			tok.kind = tokenEOF
			l.eof = true
			return tok, nil
		}
		tok.pos++
	}
}

// token finishes a token whose first rune, r, has already been read.
func (l *lexer) token(tok lexToken, r rune) (lexToken, error) {
	switch {
	case isDigit(r) || r == '.':
		l.unreadRune()
		if err := l.scanNum(); err != nil {
			return tok, err
		}
		tok.text, tok.kind = l.buf.String(), tokenNum
	case r == '_' || unicode.IsLetter(r):
		l.unreadRune()
		if err := l.scanIdent(); err != nil {
			return tok, err
		}
		tok.text, tok.kind = l.buf.String(), tokenIdent
		if isNumberWord(tok.text) {
			tok.kind = tokenNum
		}
	case r == '∞':
		tok.text, tok.kind = "∞", tokenNum
	case r == ',':
		tok.text, tok.kind = ",", tokenSep
	case strings.ContainsRune(Operators, r):
		tok.text, tok.kind = string(r), tokenOp
	default:
		if k := strings.IndexRune(OpenBrackets, r); k >= 0 {
			tok.text, tok.kind = brackets[k].open, tokenOpen
			break
		}
		if k := strings.IndexRune(CloseBrackets, r); k >= 0 {
			tok.text, tok.kind = brackets[k].close, tokenClose
			break
		}
		l.buf.WriteRune(r)
		return tok, l.fail("")
	}
	return tok, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isNumberWord reports whether an identifier-shaped word is a number literal.
func isNumberWord(s string) bool {
	switch s {
	case "inf", "Inf", "NaN", "nan":
		return true
	}
	return false
}

// numState is a position within a number literal.
type numState int

const (
	numStart   numState = iota
	numInt              // digits
	numPoint            // a point with no digits before it
	numFrac             // digits and a point
	numExp              // an exponent marker
	numExpSign          // an exponent marker and sign
	numExpInt           // exponent digits
)

// accepts reports whether a literal may end in state s.
func (s numState) accepts() bool {
	return s == numInt || s == numFrac || s == numExpInt
}

// endsAt reports whether r ends a literal in state s without being part of
// it.
func (s numState) endsAt(r rune) bool {
	if r == '+' || r == '-' {
		return s != numExp
	}
	return strings.ContainsRune(numEnd, r)
}

// step advances a number literal by one rune. The result is -1 if r cannot
// continue the literal.
func (s numState) step(r rune) numState {
	switch {
	case isDigit(r):
		switch s {
		case numStart, numInt:
			return numInt
		case numPoint, numFrac:
			return numFrac
		case numExp, numExpSign, numExpInt:
			return numExpInt
		}
	case r == '.':
		switch s {
		case numStart:
			return numPoint
		case numInt:
			return numFrac
		}
	case r == 'e' || r == 'E':
		if s == numInt || s == numFrac {
			return numExp
		}
	case r == '+' || r == '-':
		if s == numExp {
			return numExpSign
		}
	}
	return -1
}

// scanNum reads a number literal into buf. A sign ends the literal unless it
// directly follows the exponent marker.
func (l *lexer) scanNum() error {
	s := numStart
	for {
		r, err := l.readRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if unicode.IsSpace(r) || s.endsAt(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		if s = s.step(r); s < 0 {
			return l.fail("number")
		}
	}
	if !s.accepts() {
		return l.fail("number")
	}
	return nil
}

// scanIdent reads letters, digits, and underscores into buf. The caller has
// already seen that the first rune is a letter or underscore.
func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) fail(kind string) error {
	return &LexError{Text: l.buf.String(), Kind: kind, Col: l.col}
}

// LexError is a malformed token. It implements InputError.
type LexError struct {
	// Text is what the lexer had read of the token, ending with the rune that
	// made it invalid.
	Text string
	// Kind is "number" for a malformed number literal and empty for a rune
	// that starts no token.
	Kind string
	// Col is the column just past the last rune read.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
