// Package lexer implements the DFA-driven lexical analyzer described in
// spec.md §4.4: it reads characters through a twin buffer, emits one token
// per NextToken call, and interns lexemes into a shared symbol table.
//
// The DFA is hand-written rather than table-generated — each recognizable
// class (numbers, the three identifier classes, operators, comments) gets
// its own scan function, with maximal munch enforced by retracting
// whenever the scan reads one character past the end of the lexeme. This
// mirrors the teacher's internal/lexer.Lexer: a struct wrapping the input,
// a set of small per-class read helpers, and a single exported NextToken.
package lexer

import (
	"io"
	"strconv"
	"strings"

	"github.com/codergoel/cocofront/internal/buffer"
	"github.com/codergoel/cocofront/internal/keyword"
	"github.com/codergoel/cocofront/internal/symtab"
	"github.com/codergoel/cocofront/internal/token"
)

const (
	maxIDLen   = 20
	maxFunIDLen = 30
)

// Lexer is the lexical analyzer. It owns the twin buffer and the keyword
// trie reference but not the symbol table, which is shared with whatever
// else (parser, CLI) needs to resolve entries by reference.
type Lexer struct {
	buf  *buffer.Buffer
	kw   *keyword.Trie
	syms *symtab.Table
	line int
}

// New creates a Lexer reading from r, interning lexemes into syms. kw is
// the shared keyword trie (built once at process startup, see
// internal/keyword.New).
func New(r io.Reader, kw *keyword.Trie, syms *symtab.Table) *Lexer {
	return &Lexer{
		buf:  buffer.New(r),
		kw:   kw,
		syms: syms,
		line: 1,
	}
}

// Line reports the line the lexer is currently positioned on.
func (l *Lexer) Line() int {
	return l.line
}

// emit interns lexeme (or reuses the existing entry) and wraps it in a
// token.Node tagged with the given line.
func (l *Lexer) emit(lexeme string, kind token.Kind, value float64, line int) *token.Node {
	e := l.syms.Intern(lexeme, kind, value)
	return &token.Node{Entry: e, Line: line}
}

// emitFresh interns lexeme the same way emit does. Used for COMMENT and
// error-kind tokens: their lexemes still participate in the symbol table's
// no-duplicate-lexeme invariant (spec.md §3), so a repeated comment or
// repeated malformed lexeme (e.g. two stray "$" characters) must resolve to
// the same entry rather than a fresh one each time.
func (l *Lexer) emitFresh(lexeme string, kind token.Kind, line int) *token.Node {
	e := l.syms.Intern(lexeme, kind, 0)
	return &token.Node{Entry: e, Line: line}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isDigit27(c byte) bool    { return c >= '2' && c <= '7' }
func isLowerLetter(c byte) bool { return c >= 'a' && c <= 'z' }

// NextToken scans and returns the next token, skipping whitespace and
// advancing the line counter on newlines. It never returns nil; at
// end-of-input it returns an EOI-kinded node forever.
func (l *Lexer) NextToken() *token.Node {
	for {
		c := l.buf.Advance()
		switch {
		case c == buffer.NUL:
			l.buf.Retract()
			return &token.Node{Entry: &token.Entry{Lexeme: "", Kind: token.EOI}, Line: l.line}
		case c == ' ' || c == '\t' || c == '\r':
			continue
		case c == '\n':
			l.line++
			continue
		case c == '%':
			return l.scanComment()
		case isDigit(c):
			l.buf.Retract()
			return l.scanNumber()
		case isLowerLetter(c):
			l.buf.Retract()
			return l.scanLetterRun()
		case c == '_':
			l.buf.Retract()
			return l.scanFunctionID()
		case c == '#':
			l.buf.Retract()
			return l.scanRecordID()
		case c == '<':
			return l.scanLess()
		case c == '>':
			return l.scanGreater()
		case c == '=':
			return l.scanEquals()
		case c == '!':
			return l.scanBang()
		case c == '&':
			return l.scanTriple(c, '&', token.AND, "&&&")
		case c == '@':
			return l.scanTriple(c, '@', token.OR, "@@@")
		case c == '~':
			return l.emit("~", token.NOT, 0, l.line)
		case c == '+':
			return l.emit("+", token.PLUS, 0, l.line)
		case c == '-':
			return l.emit("-", token.MINUS, 0, l.line)
		case c == '*':
			return l.emit("*", token.MUL, 0, l.line)
		case c == '/':
			return l.emit("/", token.DIV, 0, l.line)
		case c == '[':
			return l.emit("[", token.SQBO, 0, l.line)
		case c == ']':
			return l.emit("]", token.SQBC, 0, l.line)
		case c == ',':
			return l.emit(",", token.COMMA, 0, l.line)
		case c == ';':
			return l.emit(";", token.SEM, 0, l.line)
		case c == ':':
			return l.emit(":", token.COLON, 0, l.line)
		case c == '.':
			return l.emit(".", token.DOT, 0, l.line)
		case c == '(':
			return l.emit("(", token.OP, 0, l.line)
		case c == ')':
			return l.emit(")", token.CL, 0, l.line)
		default:
			return l.emitFresh(string(c), token.UNRECOGNIZED, l.line)
		}
	}
}

// scanComment consumes "% ... \n" as a single COMMENT token, then discards
// the trailing characters up to and including the newline (which still
// advances the line counter) so the next NextToken call starts cleanly.
func (l *Lexer) scanComment() *token.Node {
	line := l.line
	var sb strings.Builder
	sb.WriteByte('%')
	for {
		c := l.buf.Advance()
		if c == '\n' || c == buffer.NUL {
			if c == '\n' {
				l.line++
			} else {
				l.buf.Retract()
			}
			break
		}
		sb.WriteByte(c)
	}
	return l.emitFresh(sb.String(), token.COMMENT, line)
}

// scanNumber scans an integer or real literal. Reals require exactly two
// fractional digits and, if an exponent follows, exactly two exponent
// digits; failing that shape at end-of-input or on a malformed tail is
// reported as an unrecognized pattern (the spec defines only the three
// named error kinds, and a malformed numeric literal is not an identifier).
func (l *Lexer) scanNumber() *token.Node {
	line := l.line
	begin := l.buf.Mark()
	for isDigit(l.buf.Advance()) {
	}
	l.buf.Retract()

	if l.buf.Advance() != '.' {
		l.buf.Retract()
		lexeme := l.buf.Slice(begin)
		n, _ := strconv.Atoi(lexeme)
		return l.emit(lexeme, token.NUM, float64(n), line)
	}

	// Real literal: need exactly two fractional digits.
	d1 := l.buf.Advance()
	if !isDigit(d1) {
		l.buf.Retract()
		return l.emitFresh(l.buf.Slice(begin), token.UNRECOGNIZED, line)
	}
	d2 := l.buf.Advance()
	if !isDigit(d2) {
		l.buf.Retract()
		return l.emitFresh(l.buf.Slice(begin), token.UNRECOGNIZED, line)
	}

	expSign := byte('+')
	hasExp := false
	var e1, e2 byte
	mark := l.buf.Mark()
	if l.buf.Advance() == 'E' {
		s := l.buf.Advance()
		if s == '+' || s == '-' {
			expSign = s
		} else {
			l.buf.Retract()
		}
		e1 = l.buf.Advance()
		if isDigit(e1) {
			e2 = l.buf.Advance()
			if isDigit(e2) {
				hasExp = true
			} else {
				l.buf.Retract()
				// malformed exponent: retract back to before 'E'
				l.retractTo(mark)
			}
		} else {
			l.retractTo(mark)
		}
	} else {
		l.buf.Retract()
	}

	lexeme := l.buf.Slice(begin)
	intPart := lexeme[:strings.IndexByte(lexeme, '.')]
	n, _ := strconv.Atoi(intPart)
	value := float64(n) + float64(d1-'0')/10 + float64(d2-'0')/100
	if hasExp {
		exp := int(e1-'0')*10 + int(e2-'0')
		if expSign == '-' {
			exp = -exp
		}
		value *= pow10(exp)
	}
	return l.emit(lexeme, token.RNUM, value, line)
}

func pow10(exp int) float64 {
	result := 1.0
	neg := exp < 0
	if neg {
		exp = -exp
	}
	for i := 0; i < exp; i++ {
		result *= 10
	}
	if neg {
		return 1 / result
	}
	return result
}

// retractTo retracts the buffer one character at a time back to mark. Used
// for the rare multi-character pattern failures where composing Retract
// calls is clearer than adding a parameterized retract-N to the buffer.
func (l *Lexer) retractTo(mark int) {
	for l.buf.Mark() != mark {
		l.buf.Retract()
	}
}

// scanLetterRun handles keywords, field identifiers, and variable
// identifiers, which all begin with a lowercase letter and so share a
// single DFA entry point. It scans the maximal run of letters, then (if
// eligible) the maximal run of [2-7] digits that follows.
func (l *Lexer) scanLetterRun() *token.Node {
	line := l.line
	begin := l.buf.Mark()
	first := l.buf.Advance()
	for isLowerLetter(l.buf.Advance()) {
	}
	l.buf.Retract()
	letters := l.buf.Slice(begin)

	if first >= 'b' && first <= 'd' {
		digitsBegin := l.buf.Mark()
		for isDigit27(l.buf.Advance()) {
		}
		l.buf.Retract()
		if l.buf.Mark() != digitsBegin {
			return l.finishIdentifier(begin, line)
		}
	}

	if kind, ok := l.kw.Lookup(letters); ok {
		return l.emit(letters, kind, 0, line)
	}
	return l.emit(letters, token.FIELDID, 0, line)
}

// finishIdentifier applies the length cap to a recognized variable
// identifier lexeme spanning [begin, current cursor).
func (l *Lexer) finishIdentifier(begin, line int) *token.Node {
	lexeme := l.buf.Slice(begin)
	if len(lexeme) > maxIDLen {
		l.consumeIdentifierTail()
		return l.emitFresh(lexeme[:maxIDLen]+"...", token.IDLENGTHEXC, line)
	}
	return l.emit(lexeme, token.ID, 0, line)
}

// consumeIdentifierTail discards any remaining identifier characters
// (letters or digits) after a length-exceeded error so the next emitted
// token begins cleanly.
func (l *Lexer) consumeIdentifierTail() {
	for {
		c := l.buf.Advance()
		if isLowerLetter(c) || isDigit(c) {
			continue
		}
		l.buf.Retract()
		return
	}
}

// scanFunctionID handles "_main" and general function identifiers:
// "_" letter (letters)* (digits)*, capped at 30 characters.
func (l *Lexer) scanFunctionID() *token.Node {
	line := l.line
	begin := l.buf.Mark()
	l.buf.Advance() // consume '_'

	c := l.buf.Advance()
	if !isLowerLetter(c) {
		l.buf.Retract()
		return l.emitFresh(l.buf.Slice(begin), token.UNRECOGNIZED, line)
	}
	for isLowerLetter(l.buf.Advance()) {
	}
	l.buf.Retract()
	for isDigit(l.buf.Advance()) {
	}
	l.buf.Retract()

	lexeme := l.buf.Slice(begin)
	if lexeme == "_main" {
		return l.emit(lexeme, token.MAIN, 0, line)
	}
	if len(lexeme) > maxFunIDLen {
		l.consumeIdentifierTail()
		return l.emitFresh(lexeme[:maxFunIDLen]+"...", token.FUNIDLENGTHEXC, line)
	}
	return l.emit(lexeme, token.FUNID, 0, line)
}

// scanRecordID handles "#[a-z]+".
func (l *Lexer) scanRecordID() *token.Node {
	line := l.line
	begin := l.buf.Mark()
	l.buf.Advance() // consume '#'
	start := l.buf.Mark()
	for isLowerLetter(l.buf.Advance()) {
	}
	l.buf.Retract()
	if l.buf.Mark() == start {
		return l.emitFresh(l.buf.Slice(begin), token.UNRECOGNIZED, line)
	}
	lexeme := l.buf.Slice(begin)
	return l.emit(lexeme, token.RUID, 0, line)
}

// scanLess disambiguates "<", "<=", and the four-character "<---" assignment
// operator.
func (l *Lexer) scanLess() *token.Node {
	line := l.line
	if c2 := l.buf.Advance(); c2 == '=' {
		return l.emit("<=", token.LE, 0, line)
	} else if c2 == '-' {
		if c3 := l.buf.Advance(); c3 == '-' {
			if c4 := l.buf.Advance(); c4 == '-' {
				return l.emit("<---", token.ASSIGNOP, 0, line)
			}
			l.buf.Retract()
		}
		l.buf.Retract()
		l.buf.Retract()
		return l.emit("<", token.LT, 0, line)
	} else {
		l.buf.Retract()
		return l.emit("<", token.LT, 0, line)
	}
}

func (l *Lexer) scanGreater() *token.Node {
	line := l.line
	if l.buf.Advance() == '=' {
		return l.emit(">=", token.GE, 0, line)
	}
	l.buf.Retract()
	return l.emit(">", token.GT, 0, line)
}

func (l *Lexer) scanEquals() *token.Node {
	line := l.line
	if l.buf.Advance() == '=' {
		return l.emit("==", token.EQ, 0, line)
	}
	l.buf.Retract()
	return l.emitFresh("=", token.UNRECOGNIZED, line)
}

func (l *Lexer) scanBang() *token.Node {
	line := l.line
	if l.buf.Advance() == '=' {
		return l.emit("!=", token.NE, 0, line)
	}
	l.buf.Retract()
	return l.emitFresh("!", token.UNRECOGNIZED, line)
}

// scanTriple handles the three-character logical operators &&& and @@@: two
// more repetitions of ch after the one already consumed by NextToken.
func (l *Lexer) scanTriple(ch, repeat byte, kind token.Kind, lexeme string) *token.Node {
	line := l.line
	if c2 := l.buf.Advance(); c2 == repeat {
		if c3 := l.buf.Advance(); c3 == repeat {
			return l.emit(lexeme, kind, 0, line)
		}
		l.buf.Retract()
	}
	l.buf.Retract()
	return l.emitFresh(string(ch), token.UNRECOGNIZED, line)
}

// Tokens lexes the entire input into a slice, terminated by (and
// including) the EOI node. This is what the default pipeline hands to the
// parser: a materialized token list rather than a pull-based stream,
// matching §5's synchronous single-pass model.
func (l *Lexer) Tokens() []*token.Node {
	var out []*token.Node
	var prev *token.Node
	for {
		n := l.NextToken()
		out = append(out, n)
		if prev != nil {
			prev.Next = n
		}
		prev = n
		if n.KindOf() == token.EOI {
			return out
		}
	}
}
