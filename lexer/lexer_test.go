// SPDX-License-Identifier: MIT
package lexer

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"gitlab.com/fisherprime/uir/types"
)

func TestScanner_Tokens(t *testing.T) {
	type args struct {
		source string
		opts   []Option
	}

	tests := []struct {
		name string
		args args
		want []Token
	}{
		{
			name: "empty",
			args: args{source: ""},
			want: nil,
		},
		{
			name: "declaration",
			args: args{source: ".typedef"},
			want: []Token{{".typedef", KeywordDeclaration, 0}},
		},
		{
			name: "global identifier",
			args: args{source: "@foo"},
			want: []Token{{"@foo", GlobalIdentifier, 0}},
		},
		{
			name: "decimal",
			args: args{source: "42"},
			want: []Token{{"42", NumberInteger, 0}},
		},
		{
			name: "hexadecimal",
			args: args{source: "0x1A"},
			want: []Token{{"0x1A", NumberInteger, 0}},
		},
		{
			name: "signed",
			args: args{source: "-42"},
			want: []Token{{"-42", NumberInteger, 0}},
		},
		{
			name: "invalid octal",
			args: args{source: "09"},
			want: []Token{{"0", Text, 0}, {"9", Text, 1}},
		},
		{
			name: "double with exponent",
			args: args{source: "3.14e10d"},
			want: []Token{{"3.14e10d", NumberFloat, 0}},
		},
		{
			name: "nan suffixed double",
			args: args{source: "nand"},
			want: []Token{{"nand", NumberFloat, 0}},
		},
		{
			name: "negative infinity",
			args: args{source: "-inff"},
			want: []Token{{"-inff", NumberFloat, 0}},
		},
		{
			name: "signed after digit",
			args: args{source: "1-1"},
			want: []Token{{"1", NumberInteger, 0}, {"-", Text, 1}, {"1", NumberInteger, 2}},
		},
		{
			name: "unsuffixed float",
			args: args{source: "3.14"},
			want: []Token{{"3", NumberInteger, 0}, {".", Text, 1}, {"14", NumberInteger, 2}},
		},
		{
			name: "comment excludes newline",
			args: args{source: "// comment\nADD"},
			want: []Token{{"// comment", Comment, 0}, {"\n", Whitespace, 10}, {"ADD", OperatorWord, 11}},
		},
		{
			name: "whitespace run",
			args: args{source: "   "},
			want: []Token{{"   ", Whitespace, 0}},
		},
		{
			name: "unknown symbol",
			args: args{source: "$"},
			want: []Token{{"$", Text, 0}},
		},
		{
			name: "non-ascii",
			args: args{source: "é"},
			want: []Token{{"é", Text, 0}},
		},
		{
			name: "invalid utf-8",
			args: args{source: "\xff@a"},
			want: []Token{{"\xff", Text, 0}, {"@a", GlobalIdentifier, 1}},
		},
		{
			name: "constant",
			args: args{source: "NULL"},
			want: []Token{{"NULL", KeywordConstant, 0}},
		},
		{
			name: "longest word",
			args: args{source: "BRANCH2 RET_WITH"},
			want: []Token{{"BRANCH2", OperatorWord, 0}, {" ", Whitespace, 7}, {"RET_WITH", OperatorWord, 8}},
		},
		{
			name: "instruction",
			args: args{source: "%x = ADD <int<32>> %a %b"},
			want: []Token{
				{"%x", LocalIdentifier, 0},
				{" ", Whitespace, 2},
				{"=", Punctuation, 3},
				{" ", Whitespace, 4},
				{"ADD", OperatorWord, 5},
				{" ", Whitespace, 8},
				{"<", Punctuation, 9},
				{"int", KeywordType, 10},
				{"<", Punctuation, 13},
				{"32", NumberInteger, 14},
				{">", Punctuation, 16},
				{">", Punctuation, 17},
				{" ", Whitespace, 18},
				{"%a", LocalIdentifier, 19},
				{" ", Whitespace, 21},
				{"%b", LocalIdentifier, 22},
			},
		},
		{
			name: "expose",
			args: args{source: ".expose @e = @f #DEFAULT @c"},
			want: []Token{
				{".expose", KeywordDeclaration, 0},
				{" ", Whitespace, 7},
				{"@e", GlobalIdentifier, 8},
				{" ", Whitespace, 10},
				{"=", Punctuation, 11},
				{" ", Whitespace, 12},
				{"@f", GlobalIdentifier, 13},
				{" ", Whitespace, 15},
				{"#DEFAULT", MetaLiteral, 16},
				{" ", Whitespace, 24},
				{"@c", GlobalIdentifier, 25},
			},
		},
		{
			name: "arrow",
			args: args{source: "()->(@i32)"},
			want: []Token{
				{"(", Punctuation, 0},
				{")", Punctuation, 1},
				{"->", Punctuation, 2},
				{"(", Punctuation, 4},
				{"@i32", GlobalIdentifier, 5},
				{")", Punctuation, 9},
			},
		},
		{
			name: "legacy instruction",
			args: args{source: "RETVOID", opts: []Option{WithVocabulary(Legacy)}},
			want: []Token{{"RETVOID", OperatorWord, 0}},
		},
		{
			name: "legacy type",
			args: args{source: "func", opts: []Option{WithVocabulary(Legacy)}},
			want: []Token{{"func", KeywordType, 0}},
		},
		{
			name: "current reference type",
			args: args{source: "framecursorref"},
			want: []Token{{"framecursorref", KeywordType, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.args.source, tt.args.opts...).Tokens()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Scanner.Tokens() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanner_WordBoundary(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		opts     []Option
		excluded Category
	}{
		{name: "declaration prefix", source: ".typedefx", excluded: KeywordDeclaration},
		{name: "instruction prefix", source: "ADDed", excluded: OperatorWord},
		{name: "type prefix", source: "int32", excluded: KeywordType},
		{name: "constant prefix", source: "NULLPTR", excluded: KeywordConstant},
		{name: "float prefix", source: "nandx", excluded: NumberFloat},
		{name: "retired instruction", source: "RETVOID", excluded: OperatorWord},
		{name: "retired type", source: "func", excluded: KeywordType},
		{name: "new type", source: "uptr", opts: []Option{WithVocabulary(Legacy)}, excluded: KeywordType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tok := range New(tt.source, tt.opts...).Tokens() {
				if tok.Category == tt.excluded {
					t.Errorf("Scanner.Tokens() yielded %s token %q in %q", tt.excluded, tok.Val, tt.source)
				}
			}
		})
	}
}

func TestWords(t *testing.T) {
	words := Words(types.NewWordList("ADD", "BRANCH2", ".typedef"))

	tests := []struct {
		name   string
		source string
		want   int
	}{
		{name: "word", source: "ADD", want: 3},
		{name: "longest word", source: "BRANCH2 %x", want: 7},
		{name: "directive", source: ".typedef @a", want: 8},
		{name: "prefix", source: "BRANCH2x", want: 0},
		{name: "long run", source: "BRANCH2" + strings.Repeat("x", 1<<12), want: 0},
		{name: "unknown", source: "SUB", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := words([]rune(tt.source), 0)
			if err != nil {
				t.Fatalf("Words() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Words() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScanner_LongWordRun(t *testing.T) {
	// Every position of an unmatched run is retried by each rule.
	const length = 1 << 16

	tests := []struct {
		name   string
		source string
	}{
		{name: "letters", source: strings.Repeat("a", length)},
		{name: "keyword prefixes", source: strings.Repeat("ADD", length/3)},
		{name: "digits before a letter", source: strings.Repeat("1", length) + "a"},
		{name: "zeros before a nine", source: strings.Repeat("0", length) + "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			tokens := New(tt.source).Tokens()
			elapsed := time.Since(start)

			if len(tokens) < 1 || tokens[len(tokens)-1].End() != len(tt.source) {
				t.Fatalf("Scanner.Tokens() did not reach the end of the source")
			}
			if elapsed > 5*time.Second {
				t.Errorf("Scanner.Tokens() took %v for a %d rune run", elapsed, len(tt.source))
			}
		})
	}
}

func TestScanner_Next(t *testing.T) {
	s := New("ADD %a")

	if got := s.Offset(); got != 0 {
		t.Errorf("Scanner.Offset() = %d, want 0", got)
	}

	want := []Token{{"ADD", OperatorWord, 0}, {" ", Whitespace, 3}, {"%a", LocalIdentifier, 4}}
	for index := range want {
		got, ok := s.Next()
		if !ok {
			t.Fatalf("Scanner.Next() ended early at token %d", index)
		}
		if got != want[index] {
			t.Errorf("Scanner.Next() = %+v, want %+v", got, want[index])
		}
		if got.End() != s.Offset() {
			t.Errorf("Token.End() = %d, Scanner.Offset() = %d", got.End(), s.Offset())
		}
	}

	if got, ok := s.Next(); ok {
		t.Errorf("Scanner.Next() = %+v after the end of input", got)
	}
	// Not restartable.
	if got := s.Tokens(); len(got) > 0 {
		t.Errorf("Scanner.Tokens() = %+v after the end of input", got)
	}
}

func TestScanner_Debug(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tokens := New("ADD %a", WithLogger(logger), WithDebug(true)).Tokens()
	if got := len(hook.AllEntries()); got != len(tokens) {
		t.Errorf("debug entries = %d, want %d", got, len(tokens))
	}

	hook.Reset()
	New("ADD %a", WithLogger(logger)).Tokens()
	if got := len(hook.AllEntries()); got != 0 {
		t.Errorf("debug entries without the debug option = %d, want 0", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	logger, hook := test.NewNullLogger()

	cfg := Config{Logger: logger, Vocabulary: Vocabulary(99)}
	cfg.Validate()

	if cfg.Vocabulary != Current {
		t.Errorf("Config.Validate() vocabulary = %s, want %s", cfg.Vocabulary, Current)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.WarnLevel {
		t.Errorf("Config.Validate() expected a warning, got %+v", entry)
	}

	empty := Config{}
	empty.Validate()
	if empty.Logger == nil {
		t.Error("Config.Validate() left the logger unset")
	}
}

func FuzzScanner_Tokens(f *testing.F) {
	for _, seed := range []string{
		"",
		".typedef @i32 = int<32>",
		"// comment\n%x = ADD <@i32> %a %b",
		"3.14e10d nand -inff 0x1A 077",
		"\xff\xfe\x00$é",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, source string) {
		var (
			builder strings.Builder
			pos     int
		)

		for _, tok := range New(source).Tokens() {
			if tok.Val == "" {
				t.Fatalf("empty token at %d", tok.Pos)
			}
			if tok.Pos != pos {
				t.Fatalf("token %q at %d, want %d", tok.Val, tok.Pos, pos)
			}
			pos = tok.End()
			builder.WriteString(tok.Val)
		}

		if got := builder.String(); got != source {
			t.Errorf("concatenated tokens = %q, want %q", got, source)
		}
	})
}

func BenchmarkScanner_Tokens(b *testing.B) {
	src := `// Factorial
.typedef @i64 = int<64>
.funcsig @fac.sig = (@i64) -> (@i64)
.funcdef @fac VERSION %v1 <@fac.sig> {
    %entry(<@i64> %n):
        %z = EQ <@i64> %n @I64_0
        BRANCH2 %z %base(@I64_1) %rec(%n)
}
`

	logger := logrus.New()

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		New(src, WithLogger(logger)).Tokens()
	}
}

func BenchmarkScanner_LongWordRun(b *testing.B) {
	src := strings.Repeat("a", 1<<14)

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		New(src).Tokens()
	}
}
