package interp

import "strconv"

// keywordTest is the script language's one reserved word.
const keywordTest = "Test"

// parseLine parses one lexed line into a statement. A blank line (no
// tokens, or a comment-only line) returns (nil, nil).
func parseLine(toks []token, line int) (*statement, error) {
	if len(toks) == 0 {
		return nil, nil
	}

	if toks[0].class == tcName && toks[0].lexeme == keywordTest {
		return parseTest(toks, line)
	}
	if toks[0].class == tcName && predicateNames[toks[0].lexeme] {
		return parsePredicate(toks, line)
	}
	return parseDeclaration(toks, line)
}

// parseTest parses `Test language test_set iterations (!!)?`.
func parseTest(toks []token, line int) (*statement, error) {
	rest := toks[1:]
	rest, verbose := stripTrailingBang(rest)
	if len(rest) != 3 {
		return nil, parseErrorf(line, "Test requires exactly 3 arguments (language, test_set, iterations), got %d", len(rest))
	}
	langAtom, err := toAtom(rest[0], line)
	if err != nil {
		return nil, err
	}
	setAtom, err := toAtom(rest[1], line)
	if err != nil {
		return nil, err
	}
	if rest[2].class != tcNumber {
		return nil, parseErrorf(line, "Test's iterations argument must be a positive integer, got %s", rest[2])
	}
	n, _ := strconv.Atoi(rest[2].lexeme)
	if n <= 0 {
		return nil, parseErrorf(line, "Test's iterations argument must be positive, got %d", n)
	}
	return &statement{kind: stmtTest, line: line, language: langAtom, testSet: setAtom, iterations: n, verbose: verbose}, nil
}

// parsePredicate parses `pred expr+ (!!)?`.
func parsePredicate(toks []token, line int) (*statement, error) {
	name := toks[0].lexeme
	rest := toks[1:]
	rest, verbose := stripTrailingBang(rest)
	if len(rest) == 0 {
		return nil, parseErrorf(line, "%s requires at least one argument", name)
	}
	args := make([]exprAtom, 0, len(rest))
	for _, t := range rest {
		a, err := toAtom(t, line)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return &statement{kind: stmtPredicate, line: line, predName: name, predArgs: args, verbose: verbose}, nil
}

// parseDeclaration parses `id = (fn.)* fn? expr+ (!!)?`. Since a bareword
// function name and a bareword all-letter
// regex literal are lexically identical (lexer.go classifyAtom), a name is
// only consumed as a function when it is both a known operation and
// followed by more tokens that can still supply the required expr+.
func parseDeclaration(toks []token, line int) (*statement, error) {
	if len(toks) < 2 || toks[0].class != tcID {
		return nil, parseErrorf(line, "expected an identifier to start a declaration")
	}
	if toks[1].class != tcEquals {
		return nil, parseErrorf(line, "expected '=' after identifier %s", toks[0].lexeme)
	}
	rest := toks[2:]
	rest, verbose := stripTrailingBang(rest)

	var fnNames []string
	for len(rest) > 0 {
		t := rest[0]
		if t.class != tcName {
			break
		}
		if len(rest) >= 2 && rest[1].class == tcDot {
			fnNames = append(fnNames, t.lexeme)
			rest = rest[2:]
			continue
		}
		if _, known := opTable[t.lexeme]; known && len(rest) >= 2 {
			fnNames = append(fnNames, t.lexeme)
			rest = rest[1:]
		}
		break
	}

	if len(rest) == 0 {
		return nil, parseErrorf(line, "declaration of %s has no arguments", toks[0].lexeme)
	}
	args := make([]exprAtom, 0, len(rest))
	for _, t := range rest {
		a, err := toAtom(t, line)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return &statement{kind: stmtDeclaration, line: line, id: toks[0].lexeme, fnNames: fnNames, args: args, verbose: verbose}, nil
}

// stripTrailingBang removes a trailing `!!` token, reporting whether it was
// present.
func stripTrailingBang(toks []token) ([]token, bool) {
	if len(toks) > 0 && toks[len(toks)-1].class == tcBang {
		return toks[:len(toks)-1], true
	}
	return toks, false
}

func toAtom(t token, line int) (exprAtom, error) {
	switch t.class {
	case tcID:
		return exprAtom{kind: atomID, text: t.lexeme, line: line}, nil
	case tcNumber:
		n, err := strconv.Atoi(t.lexeme)
		if err != nil {
			return exprAtom{}, lexErrorf(line, "malformed number %q", t.lexeme)
		}
		return exprAtom{kind: atomNumber, number: n, line: line}, nil
	case tcString:
		return exprAtom{kind: atomFilename, text: t.lexeme, line: line}, nil
	case tcRegex, tcName:
		return exprAtom{kind: atomRegex, text: t.lexeme, line: line}, nil
	default:
		return exprAtom{}, parseErrorf(line, "unexpected %s where an argument was expected", t)
	}
}
