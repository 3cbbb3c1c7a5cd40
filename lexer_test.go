// lexer_test.go
package mornington

import (
	"reflect"
	"strings"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	l := NewLexer(src)
	ts, err := l.Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func lexErr(t *testing.T, src string) *LexError {
	t.Helper()
	_, err := NewLexer(src).Scan()
	if err == nil {
		t.Fatalf("expected a lex error for %q, got none", src)
	}
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("expected *LexError for %q, got %T: %v", src, err, err)
	}
	return le
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

// --- wrapper runs -----------------------------------------------------------

func Test_Lexer_WrapperRuns_AreSingleTokens(t *testing.T) {
	got := wantTypes(t, "(( (", []TokenType{LROUND, LROUND})
	if got[0].Lexeme != "((" || got[1].Lexeme != "(" {
		t.Fatalf("want run lexemes %q and %q, got %q and %q", "((", "(", got[0].Lexeme, got[1].Lexeme)
	}
	if got[0].Col != 0 || got[1].Col != 3 {
		t.Fatalf("want cols 0 and 3, got %d and %d", got[0].Col, got[1].Col)
	}

	got = wantTypes(t, ")) )", []TokenType{RROUND, RROUND})
	if got[0].Lexeme != "))" || got[1].Lexeme != ")" {
		t.Fatalf("unexpected rparen runs: %q, %q", got[0].Lexeme, got[1].Lexeme)
	}

	got = wantTypes(t, "]] ] [[ [", []TokenType{RSQUARE, RSQUARE, LSQUARE, LSQUARE})
	if got[0].Lexeme != "]]" || got[3].Lexeme != "[" {
		t.Fatalf("unexpected square runs: %q, %q", got[0].Lexeme, got[3].Lexeme)
	}
}

func Test_Lexer_TouchingCloserRuns_MergeIntoOneToken(t *testing.T) {
	// `]]]]` is one token of four closers; `]] ]]` is two tokens of two
	got := wantTypes(t, "]]]]", []TokenType{RSQUARE})
	if len(got[0].Lexeme) != 4 {
		t.Fatalf("want one run of 4, got %q", got[0].Lexeme)
	}
	wantTypes(t, "]] ]]", []TokenType{RSQUARE, RSQUARE})
}

// --- operators --------------------------------------------------------------

func Test_Lexer_Operators(t *testing.T) {
	wantTypes(t, "+ - * / %", []TokenType{PLUS, MINUS, MULT, DIV, MOD})
	wantTypes(t, "= == === != !== < > <= >=", []TokenType{
		ASSIGN, EQ, SEQ, NEQ, SNE, LESS, GREATER, LESS_EQ, GREATER_EQ,
	})
}

func Test_Lexer_Newlines_TrackLines(t *testing.T) {
	got := wantTypes(t, "\n\n", []TokenType{NEWLINE, NEWLINE})
	if got[0].Line != 1 || got[1].Line != 2 {
		t.Fatalf("want lines 1 and 2, got %d and %d", got[0].Line, got[1].Line)
	}
}

// --- names, keywords, literals ----------------------------------------------

func Test_Lexer_Names(t *testing.T) {
	got := wantTypes(t, "m0r_nIngton_rul3z  _h3lloWorld", []TokenType{ID, ID})
	if got[0].Literal.(string) != "m0r_nIngton_rul3z" || got[1].Literal.(string) != "_h3lloWorld" {
		t.Fatalf("unexpected name literals: %v, %v", got[0].Literal, got[1].Literal)
	}
	if got[1].Col != 19 {
		t.Fatalf("want second name at col 19, got %d", got[1].Col)
	}
}

func Test_Lexer_Keywords(t *testing.T) {
	wantTypes(t, "fi lefi sele whitl fir ni brek cnotineu fnuc retrun", []TokenType{
		IF, ELIF, ELSE, WHILE, FOR, IN, BREAK, CONTINUE, FUNCDEF, RETURN,
	})
	got := wantTypes(t, "rtue flase", []TokenType{BOOLEAN, BOOLEAN})
	if got[0].Literal.(bool) != true || got[1].Literal.(bool) != false {
		t.Fatalf("unexpected boolean literals: %v, %v", got[0].Literal, got[1].Literal)
	}
	// keywords embedded in longer names stay names
	wantTypes(t, "first nifty brekfast", []TokenType{ID, ID, ID})
}

func Test_Lexer_Numbers(t *testing.T) {
	got := wantTypes(t, "1 12 1.0 4.234", []TokenType{NUMBER, NUMBER, NUMBER, NUMBER})
	want := []float64{1, 12, 1.0, 4.234}
	for i, w := range want {
		if got[i].Literal.(float64) != w {
			t.Fatalf("number %d: want %v, got %v", i, w, got[i].Literal)
		}
	}
}

// --- strings ----------------------------------------------------------------

func Test_Lexer_Strings_ImbalancedQuoteRuns(t *testing.T) {
	got := wantTypes(t, `"Hello, Mornington!"""`, []TokenType{STRING})
	if got[0].Literal.(string) != "Hello, Mornington!" {
		t.Fatalf("unexpected string literal: %q", got[0].Literal)
	}
	got = wantTypes(t, `"""Hello, Mornington!"`, []TokenType{STRING})
	if got[0].Literal.(string) != "Hello, Mornington!" {
		t.Fatalf("unexpected string literal: %q", got[0].Literal)
	}
}

func Test_Lexer_Strings_EmptyForms(t *testing.T) {
	for _, src := range []string{`"'`, `'"`} {
		got := wantTypes(t, src, []TokenType{STRING})
		if got[0].Literal.(string) != "" {
			t.Fatalf("%q: want empty string, got %q", src, got[0].Literal)
		}
	}
}

func Test_Lexer_Strings_BackslashPassesThrough(t *testing.T) {
	got := wantTypes(t, `"%s is %n\% the best!""`, []TokenType{STRING})
	if got[0].Literal.(string) != `%s is %n\% the best!` {
		t.Fatalf("unexpected string literal: %q", got[0].Literal)
	}
}

func Test_Lexer_Strings_BalancedQuotesFault(t *testing.T) {
	le := lexErr(t, `"balanced"`)
	if !strings.Contains(le.Msg, "balanced string quotes") {
		t.Fatalf("unexpected message: %q", le.Msg)
	}
	lexErr(t, `""also balanced""`)
}

func Test_Lexer_Strings_UnterminatedFault(t *testing.T) {
	le := lexErr(t, `"runs off the end`)
	if !strings.Contains(le.Msg, "not terminated") {
		t.Fatalf("unexpected message: %q", le.Msg)
	}
}

func Test_Lexer_LoneSingleQuote_Faults(t *testing.T) {
	lexErr(t, "'x")
}

// --- comments ---------------------------------------------------------------

func Test_Lexer_Comments_ImbalancedStarsAreDiscarded(t *testing.T) {
	wantTypes(t, "/* a comment **/ x", []TokenType{ID})
	wantTypes(t, "/*** spans\nlines **/ x", []TokenType{ID})
}

func Test_Lexer_Comments_LineNumbersSurviveMultilineComments(t *testing.T) {
	got := wantTypes(t, "/* one\ntwo\nthree **/ x", []TokenType{ID})
	if got[0].Line != 3 {
		t.Fatalf("want x on line 3, got %d", got[0].Line)
	}
}

func Test_Lexer_Comments_BalancedStarsFault(t *testing.T) {
	le := lexErr(t, "/** balanced **/")
	if !strings.Contains(le.Msg, "balanced comment delimiters") {
		t.Fatalf("unexpected message: %q", le.Msg)
	}
	lexErr(t, "/* balanced */")
}

func Test_Lexer_Comments_UnterminatedFault(t *testing.T) {
	le := lexErr(t, "/** runs off the end")
	if !strings.Contains(le.Msg, "not terminated") {
		t.Fatalf("unexpected message: %q", le.Msg)
	}
}

func Test_Lexer_Comments_StarRunsInsideBody(t *testing.T) {
	// inner star runs not followed by '/' are body text
	wantTypes(t, "/* ** * *** **/ x", []TokenType{ID})
}

// --- full lines -------------------------------------------------------------

func Test_Lexer_Examples_HelloWorld(t *testing.T) {
	wantTypes(t, `prointl(("Hello, World!""")`, []TokenType{
		ID, LROUND, STRING, RROUND,
	})
}

func Test_Lexer_Examples_ForLoopHeader(t *testing.T) {
	wantTypes(t, "fir i ni arnge(3))", []TokenType{
		FOR, ID, IN, ID, LROUND, NUMBER, RROUND,
	})
}

func Test_Lexer_LeadingSpaces_ReflectedInColumn(t *testing.T) {
	got := toks(t, "x = 1\n   y = 2\n")
	var yTok *Token
	for i := range got {
		if got[i].Type == ID && got[i].Literal == "y" {
			yTok = &got[i]
		}
	}
	if yTok == nil || yTok.Col != 3 || yTok.Line != 2 {
		t.Fatalf("want y at 2:3, got %+v", yTok)
	}
}

func Test_Lexer_UnknownCharacter_Faults(t *testing.T) {
	lexErr(t, "x = 3 @")
	lexErr(t, "x = 3 !")
}
