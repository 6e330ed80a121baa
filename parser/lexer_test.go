package parser

import "testing"

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let add = fn(x, y) {
  x + y;
};
let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
{"foo": "bar"}
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "add"}, {ASSIGN, "="}, {FUNCTION, "fn"}, {LPAREN, "("},
		{IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"}, {LPAREN, "("},
		{IDENT, "five"}, {COMMA, ","}, {IDENT, "ten"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {ELSE, "else"}, {LBRACE, "{"},
		{RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{STRING, "foobar"},
		{STRING, "foo bar"},
		{LBRACKET, "["}, {INT, "1"}, {COMMA, ","}, {INT, "2"}, {RBRACKET, "]"}, {SEMICOLON, ";"},
		{LBRACE, "{"}, {STRING, "foo"}, {COLON, ":"}, {STRING, "bar"}, {RBRACE, "}"},
		{EOF, ""},
	}

	l := NewLexer(input)

	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestLexerTracksLineAndColumn(t *testing.T) {
	l := NewLexer("let x = 1;\nlet y = 2;")

	first := l.NextToken()
	if first.Line != 1 {
		t.Errorf("first token line = %d, want 1", first.Line)
	}
	if first.Column != 1 {
		t.Errorf("first token column = %d, want 1", first.Column)
	}

	for {
		tok := l.NextToken()
		if tok.Literal == "y" {
			if tok.Line != 2 {
				t.Errorf("token %q line = %d, want 2", tok.Literal, tok.Line)
			}
			if tok.Column != 5 {
				t.Errorf("token %q column = %d, want 5", tok.Literal, tok.Column)
			}
			break
		}
		if tok.Type == EOF {
			t.Fatal("ran out of tokens before finding second line")
		}
	}
}
