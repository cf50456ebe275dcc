// Package token defines the lexical vocabulary of the language: the four
// token classes, the fixed keyword and punctuator tables, and the positional
// metadata attached to every token.
package token

// Kind identifies which variant of a Token is active.
type Kind uint8

const (
	KindKeyword Kind = iota
	KindIdentifier
	KindLiteral
	KindPunctuator
)

var kindNames = [...]string{
	KindKeyword:    "keyword",
	KindIdentifier: "identifier",
	KindLiteral:    "literal",
	KindPunctuator: "punctuator",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// LiteralKind distinguishes the payload of a literal token.
type LiteralKind uint8

const (
	LitString LiteralKind = iota
	LitInt
	LitFloat
)

func (l LiteralKind) String() string {
	switch l {
	case LitString:
		return "string"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	}
	return "unknown"
}

// Keyword identifies one reserved word. Values index into Keywords.
type Keyword uint8

const (
	KwAction Keyword = iota
	KwBreak
	KwCase
	KwConst
	KwDefault
	KwDo
	KwEffect
	KwElse
	KwEvent
	KwFloat
	KwFor
	KwIf
	KwInt
	KwItemProperty
	KwLocation
	KwObject
	KwReturn
	KwString
	KwStruct
	KwSwitch
	KwTalent
	KwVector
	KwVoid
	KwWhile
)

// Punctuator identifies one operator or delimiter. Values index into
// Punctuators.
type Punctuator uint8

const (
	Amp Punctuator = iota
	AmpAmp
	AmpEquals
	Asterisk
	AsteriskEquals
	Caret
	CaretEquals
	Colon
	ColonColon
	Comma
	Dot
	DotDotDot
	Equal
	EqualEqual
	Exclamation
	ExclamationEquals
	Greater
	GreaterEquals
	GreaterGreater
	GreaterGreaterEquals
	LeftCurlyBracket
	LeftParen
	LeftSquareBracket
	Less
	LessEquals
	LessLess
	LessLessEquals
	Minus
	MinusEquals
	MinusMinus
	Modulo
	ModuloEquals
	Pipe
	PipeEquals
	PipePipe
	Plus
	PlusEquals
	PlusPlus
	Question
	RightCurlyBracket
	RightParen
	RightSquareBracket
	Semicolon
	Slash
	SlashEquals
	Tilde
)

// KeywordEntry pairs a keyword spelling with its id.
type KeywordEntry struct {
	Spelling string
	Keyword  Keyword
}

// Keywords is the fixed keyword table. Entry order must match the Keyword
// constants.
var Keywords = [...]KeywordEntry{
	{"action", KwAction},
	{"break", KwBreak},
	{"case", KwCase},
	{"const", KwConst},
	{"default", KwDefault},
	{"do", KwDo},
	{"effect", KwEffect},
	{"else", KwElse},
	{"event", KwEvent},
	{"float", KwFloat},
	{"for", KwFor},
	{"if", KwIf},
	{"int", KwInt},
	{"itemproperty", KwItemProperty},
	{"location", KwLocation},
	{"object", KwObject},
	{"return", KwReturn},
	{"string", KwString},
	{"struct", KwStruct},
	{"switch", KwSwitch},
	{"talent", KwTalent},
	{"vector", KwVector},
	{"void", KwVoid},
	{"while", KwWhile},
}

// PunctuatorEntry pairs a punctuator spelling with its id.
type PunctuatorEntry struct {
	Spelling   string
	Punctuator Punctuator
}

// Punctuators is the fixed punctuator table (see WG14/N1256 6.4.6 with some
// exclusions and additions). Entry order must match the Punctuator constants.
var Punctuators = [...]PunctuatorEntry{
	{"&", Amp},
	{"&&", AmpAmp},
	{"&=", AmpEquals},
	{"*", Asterisk},
	{"*=", AsteriskEquals},
	{"^", Caret},
	{"^=", CaretEquals},
	{":", Colon},
	{"::", ColonColon},
	{",", Comma},
	{".", Dot},
	{"...", DotDotDot},
	{"=", Equal},
	{"==", EqualEqual},
	{"!", Exclamation},
	{"!=", ExclamationEquals},
	{">", Greater},
	{">=", GreaterEquals},
	{">>", GreaterGreater},
	{">>=", GreaterGreaterEquals},
	{"{", LeftCurlyBracket},
	{"(", LeftParen},
	{"[", LeftSquareBracket},
	{"<", Less},
	{"<=", LessEquals},
	{"<<", LessLess},
	{"<<=", LessLessEquals},
	{"-", Minus},
	{"-=", MinusEquals},
	{"--", MinusMinus},
	{"%", Modulo},
	{"%=", ModuloEquals},
	{"|", Pipe},
	{"|=", PipeEquals},
	{"||", PipePipe},
	{"+", Plus},
	{"+=", PlusEquals},
	{"++", PlusPlus},
	{"?", Question},
	{"}", RightCurlyBracket},
	{")", RightParen},
	{"]", RightSquareBracket},
	{";", Semicolon},
	{"/", Slash},
	{"/=", SlashEquals},
	{"~", Tilde},
}

func (k Keyword) String() string {
	if int(k) < len(Keywords) {
		return Keywords[k].Spelling
	}
	return "unknown"
}

func (p Punctuator) String() string {
	if int(p) < len(Punctuators) {
		return Punctuators[p].Spelling
	}
	return "unknown"
}

// Span references a byte range in the name buffer of the lexer output that
// produced the token. Only identifier and string-literal tokens carry one.
type Span struct {
	Offset uint32
	Len    uint32
}

// DebugData records where a token appeared in the source. Line and columns
// are zero-based; ColumnEnd is exclusive. A token never spans more than one
// line.
type DebugData struct {
	Line        int
	ColumnStart int
	ColumnEnd   int
}

// Token is one classified lexical unit. Kind selects the variant; the
// remaining fields are meaningful only as documented per field.
type Token struct {
	Kind       Kind
	Keyword    Keyword     // valid when Kind == KindKeyword
	Punctuator Punctuator  // valid when Kind == KindPunctuator
	Literal    LiteralKind // valid when Kind == KindLiteral

	Int   int32   // valid when Literal == LitInt
	Float float32 // valid when Literal == LitFloat

	// Text locates the token's backing text in the name buffer. Valid for
	// identifiers and string literals; zero otherwise.
	Text Span

	Debug DebugData
}

// IsStringLiteral reports whether t is a string-literal token.
func (t Token) IsStringLiteral() bool {
	return t.Kind == KindLiteral && t.Literal == LitString
}
