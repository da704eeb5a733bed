package interp

import (
	"strings"
	"unicode"

	"github.com/desitas1701/chipollino/internal/ierrors"
)

// tokenClass names one of the lexical categories recognised by the script
// lexer. A literal symbol class carries both a machine id and a
// human-readable name for use in error messages.
type tokenClass struct {
	id    string
	human string
}

// tcParenL/tcParenR/tcBracketL/tcBracketR are never emitted standalone: a
// regex literal's own charset legally contains `(`, `)`, `[`, `]` (the regex
// grammar is `[a-zA-Z|*()]+`, plus `[]` for backref cells), so those
// characters stay inside the surrounding REGEX atom rather than splitting
// it. The kinds are named here as distinct token classes anyway; a future
// grammar that needs e.g. an explicit argument-list syntax would split them
// out at this point.
var (
	tcEquals = tokenClass{"EQUALS", "'='"}
	tcBang   = tokenClass{"BANG", "'!!'"}
	tcParenL = tokenClass{"PAREN_L", "'('"}
	tcParenR = tokenClass{"PAREN_R", "')'"}
	tcBracketL = tokenClass{"BRACKET_L", "'['"}
	tcBracketR = tokenClass{"BRACKET_R", "']'"}
	tcDot    = tokenClass{"DOT", "'.'"}
	tcNumber = tokenClass{"NUMBER", "a number"}
	tcID     = tokenClass{"ID", "an identifier"}
	tcName   = tokenClass{"NAME", "a name"}
	tcRegex  = tokenClass{"REGEX", "a regex literal"}
	tcString = tokenClass{"STRING", "a filename"}
)

// literalRules pairs the single-character punctuation literals with the
// token class they always introduce. Checked before any other scanning so
// punctuation is never absorbed into a bareword atom. Only `.` separates
// function-chain names; `=` introduces a Declaration; `!!` is the trailing
// verbose flag.
var literalRules = []struct {
	lexeme string
	class  tokenClass
}{
	{"!!", tcBang},
	{"=", tcEquals},
	{".", tcDot},
}

// token is one lexed unit of a script line.
type token struct {
	class    tokenClass
	lexeme   string
	line     int
	pos      int // 1-indexed column
	fullLine string
}

// lexLine tokenizes a single line of script source; each line is one
// operation. Whitespace separates tokens except where
// punctuation literals are recognised mid-run; a quoted `"..."` span lexes as
// a single STRING token. No operation takes a STRING argument, so the
// resolver rejects one wherever it appears.
func lexLine(line string, lineNo int) ([]token, error) {
	var toks []token
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		pos := i + 1

		if runes[i] == '#' {
			break // rest of line is a comment
		}

		if runes[i] == '"' {
			j := i + 1
			for j < len(runes) && runes[j] != '"' {
				j++
			}
			if j >= len(runes) {
				return nil, ierrors.New(ierrors.Lex, lineNo, "unterminated string literal")
			}
			toks = append(toks, token{class: tcString, lexeme: string(runes[i+1 : j]), line: lineNo, pos: pos, fullLine: line})
			i = j + 1
			continue
		}

		matched := false
		for _, r := range literalRules {
			rl := []rune(r.lexeme)
			if i+len(rl) <= len(runes) && string(runes[i:i+len(rl)]) == r.lexeme {
				toks = append(toks, token{class: r.class, lexeme: r.lexeme, line: lineNo, pos: pos, fullLine: line})
				i += len(rl)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		j := i
		for j < len(runes) && !unicode.IsSpace(runes[j]) && !isPunct(runes[j]) {
			j++
		}
		if j == i {
			return nil, ierrors.New(ierrors.Lex, lineNo, "unrecognised character %s", string(runes[i]))
		}
		atom := string(runes[i:j])
		toks = append(toks, token{class: classifyAtom(atom), lexeme: atom, line: lineNo, pos: pos, fullLine: line})
		i = j
	}
	return toks, nil
}

func isPunct(r rune) bool {
	switch r {
	case '.', '=', '"', '#':
		return true
	default:
		return false
	}
}

// classifyAtom assigns a bareword atom to NUMBER, ID, or NAME. The keyword
// `Test` and every operation name in opTable are NAME; any other atom
// starting with an uppercase letter is an ID. REGEX atoms
// (those starting with a symbol only legal inside a regex, e.g. `|`, `*`,
// `^`, `&`, `:`) are caught by the digit/letter checks falling through to
// tcRegex; the parser further reclassifies a NAME token as a REGEX literal
// when it appears where an expression is expected — names and all-letter
// regex atoms are lexically indistinguishable (the regex grammar is
// `[a-zA-Z|*()]+`), so the true disambiguator is parse position, not lexeme
// shape.
func classifyAtom(atom string) tokenClass {
	if isAllDigits(atom) {
		return tcNumber
	}
	if atom == keywordTest {
		return tcName
	}
	if _, ok := opTable[atom]; ok {
		return tcName
	}
	first := []rune(atom)[0]
	if unicode.IsUpper(first) {
		return tcID
	}
	if unicode.IsLower(first) {
		return tcName
	}
	return tcRegex
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (t token) String() string {
	return strings.TrimSpace(t.class.human + " " + t.lexeme)
}
