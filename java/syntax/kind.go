package syntax

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenCharLiteral
	TokenStringLiteral
	TokenTrue
	TokenFalse
	TokenNull

	// Keywords
	TokenAbstract
	TokenBoolean
	TokenBreak
	TokenByte
	TokenChar
	TokenClass
	TokenContinue
	TokenDefault
	TokenDouble
	TokenElse
	TokenExtends
	TokenFinal
	TokenFloat
	TokenIf
	TokenImplements
	TokenImport
	TokenInstanceof
	TokenInt
	TokenInterface
	TokenLong
	TokenNative
	TokenNew
	TokenPackage
	TokenPrivate
	TokenProtected
	TokenPublic
	TokenReturn
	TokenShort
	TokenStatic
	TokenSuper
	TokenSynchronized
	TokenThis
	TokenTransient
	TokenVoid
	TokenVolatile
	TokenWhile

	// Contextual keywords
	TokenVar
	TokenYield
	TokenRecord
	TokenSealed
	TokenPermits
	TokenModule

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenEllipsis
	TokenAt
	TokenColonColon

	TokenAssign
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenAnd
	TokenOr
	TokenNot
	TokenBitAnd
	TokenBitOr
	TokenBitXor
	TokenBitNot
	TokenShl
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenIncrement
	TokenDecrement
	TokenQuestion
	TokenColon
	TokenArrow
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenAndAssign
	TokenOrAssign
	TokenXorAssign
	TokenShlAssign

	// Produced only by a contextual rescan of '>'.
	TokenGE
	TokenShr
	TokenUShr
	TokenShrAssign
	TokenUShrAssign
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenError:         "Error",
	TokenIdent:         "Identifier",
	TokenIntLiteral:    "IntLiteral",
	TokenFloatLiteral:  "FloatLiteral",
	TokenCharLiteral:   "CharLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenTrue:          "true",
	TokenFalse:         "false",
	TokenNull:          "null",
	TokenAbstract:      "abstract",
	TokenBoolean:       "boolean",
	TokenBreak:         "break",
	TokenByte:          "byte",
	TokenChar:          "char",
	TokenClass:         "class",
	TokenContinue:      "continue",
	TokenDefault:       "default",
	TokenDouble:        "double",
	TokenElse:          "else",
	TokenExtends:       "extends",
	TokenFinal:         "final",
	TokenFloat:         "float",
	TokenIf:            "if",
	TokenImplements:    "implements",
	TokenImport:        "import",
	TokenInstanceof:    "instanceof",
	TokenInt:           "int",
	TokenInterface:     "interface",
	TokenLong:          "long",
	TokenNative:        "native",
	TokenNew:           "new",
	TokenPackage:       "package",
	TokenPrivate:       "private",
	TokenProtected:     "protected",
	TokenPublic:        "public",
	TokenReturn:        "return",
	TokenShort:         "short",
	TokenStatic:        "static",
	TokenSuper:         "super",
	TokenSynchronized:  "synchronized",
	TokenThis:          "this",
	TokenTransient:     "transient",
	TokenVoid:          "void",
	TokenVolatile:      "volatile",
	TokenWhile:         "while",
	TokenVar:           "var",
	TokenYield:         "yield",
	TokenRecord:        "record",
	TokenSealed:        "sealed",
	TokenPermits:       "permits",
	TokenModule:        "module",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenSemicolon:     ";",
	TokenComma:         ",",
	TokenDot:           ".",
	TokenEllipsis:      "...",
	TokenAt:            "@",
	TokenColonColon:    "::",
	TokenAssign:        "=",
	TokenEQ:            "==",
	TokenNE:            "!=",
	TokenLT:            "<",
	TokenLE:            "<=",
	TokenGT:            ">",
	TokenAnd:           "&&",
	TokenOr:            "||",
	TokenNot:           "!",
	TokenBitAnd:        "&",
	TokenBitOr:         "|",
	TokenBitXor:        "^",
	TokenBitNot:        "~",
	TokenShl:           "<<",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenPercent:       "%",
	TokenIncrement:     "++",
	TokenDecrement:     "--",
	TokenQuestion:      "?",
	TokenColon:         ":",
	TokenArrow:         "->",
	TokenPlusAssign:    "+=",
	TokenMinusAssign:   "-=",
	TokenStarAssign:    "*=",
	TokenSlashAssign:   "/=",
	TokenPercentAssign: "%=",
	TokenAndAssign:     "&=",
	TokenOrAssign:      "|=",
	TokenXorAssign:     "^=",
	TokenShlAssign:     "<<=",
	TokenGE:            ">=",
	TokenShr:           ">>",
	TokenUShr:          ">>>",
	TokenShrAssign:     ">>=",
	TokenUShrAssign:    ">>>=",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsDivide reports whether k is a slash operator. A later edit can turn these
// into comment openers, so tokens of these kinds are never reused.
func (k TokenKind) IsDivide() bool {
	return k == TokenSlash || k == TokenSlashAssign
}

// IsContextualKeyword reports whether k is a keyword only in some contexts and
// an identifier everywhere else.
func (k TokenKind) IsContextualKeyword() bool {
	return k >= TokenVar && k <= TokenModule
}

var keywords = map[string]TokenKind{
	"abstract":     TokenAbstract,
	"boolean":      TokenBoolean,
	"break":        TokenBreak,
	"byte":         TokenByte,
	"char":         TokenChar,
	"class":        TokenClass,
	"continue":     TokenContinue,
	"default":      TokenDefault,
	"double":       TokenDouble,
	"else":         TokenElse,
	"extends":      TokenExtends,
	"final":        TokenFinal,
	"float":        TokenFloat,
	"if":           TokenIf,
	"implements":   TokenImplements,
	"import":       TokenImport,
	"instanceof":   TokenInstanceof,
	"int":          TokenInt,
	"interface":    TokenInterface,
	"long":         TokenLong,
	"native":       TokenNative,
	"new":          TokenNew,
	"package":      TokenPackage,
	"private":      TokenPrivate,
	"protected":    TokenProtected,
	"public":       TokenPublic,
	"return":       TokenReturn,
	"short":        TokenShort,
	"static":       TokenStatic,
	"super":        TokenSuper,
	"synchronized": TokenSynchronized,
	"this":         TokenThis,
	"transient":    TokenTransient,
	"void":         TokenVoid,
	"volatile":     TokenVolatile,
	"while":        TokenWhile,
	"true":         TokenTrue,
	"false":        TokenFalse,
	"null":         TokenNull,
	"var":          TokenVar,
	"yield":        TokenYield,
	"record":       TokenRecord,
	"sealed":       TokenSealed,
	"permits":      TokenPermits,
	"module":       TokenModule,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

type NodeKind int

const (
	KindError NodeKind = iota

	// Compilation unit level
	KindCompilationUnit
	KindPackageDecl
	KindImportDecl

	// Declarations
	KindClassDecl
	KindInterfaceDecl
	KindClassBody
	KindFieldDecl
	KindMethodDecl
	KindEmptyDecl
	KindModifiers
	KindAnnotation
	KindExtendsClause
	KindImplementsClause
	KindParameters
	KindParameter
	KindDeclarator
	KindInitializer

	// Types
	KindType
	KindPrimitiveType
	KindArrayType
	KindTypeArguments
	KindQualifiedName

	// Statements
	KindBlock
	KindEmptyStmt
	KindExprStmt
	KindIfStmt
	KindElseClause
	KindWhileStmt
	KindReturnStmt
	KindBreakStmt
	KindContinueStmt
	KindLocalVarDecl

	// Expressions
	KindAssignExpr
	KindTernaryExpr
	KindBinaryExpr
	KindInstanceofExpr
	KindUnaryExpr
	KindPostfixExpr
	KindCallExpr
	KindArguments
	KindFieldAccess
	KindArrayAccess
	KindNewExpr
	KindParenExpr
	KindLiteral
	KindIdentifier
	KindThis
	KindSuper
)

var nodeKindNames = map[NodeKind]string{
	KindError:            "Error",
	KindCompilationUnit:  "CompilationUnit",
	KindPackageDecl:      "PackageDecl",
	KindImportDecl:       "ImportDecl",
	KindClassDecl:        "ClassDecl",
	KindInterfaceDecl:    "InterfaceDecl",
	KindClassBody:        "ClassBody",
	KindFieldDecl:        "FieldDecl",
	KindMethodDecl:       "MethodDecl",
	KindEmptyDecl:        "EmptyDecl",
	KindModifiers:        "Modifiers",
	KindAnnotation:       "Annotation",
	KindExtendsClause:    "ExtendsClause",
	KindImplementsClause: "ImplementsClause",
	KindParameters:       "Parameters",
	KindParameter:        "Parameter",
	KindDeclarator:       "Declarator",
	KindInitializer:      "Initializer",
	KindType:             "Type",
	KindPrimitiveType:    "PrimitiveType",
	KindArrayType:        "ArrayType",
	KindTypeArguments:    "TypeArguments",
	KindQualifiedName:    "QualifiedName",
	KindBlock:            "Block",
	KindEmptyStmt:        "EmptyStmt",
	KindExprStmt:         "ExprStmt",
	KindIfStmt:           "IfStmt",
	KindElseClause:       "ElseClause",
	KindWhileStmt:        "WhileStmt",
	KindReturnStmt:       "ReturnStmt",
	KindBreakStmt:        "BreakStmt",
	KindContinueStmt:     "ContinueStmt",
	KindLocalVarDecl:     "LocalVarDecl",
	KindAssignExpr:       "AssignExpr",
	KindTernaryExpr:      "TernaryExpr",
	KindBinaryExpr:       "BinaryExpr",
	KindInstanceofExpr:   "InstanceofExpr",
	KindUnaryExpr:        "UnaryExpr",
	KindPostfixExpr:      "PostfixExpr",
	KindCallExpr:         "CallExpr",
	KindArguments:        "Arguments",
	KindFieldAccess:      "FieldAccess",
	KindArrayAccess:      "ArrayAccess",
	KindNewExpr:          "NewExpr",
	KindParenExpr:        "ParenExpr",
	KindLiteral:          "Literal",
	KindIdentifier:       "Identifier",
	KindThis:             "This",
	KindSuper:            "Super",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsStatement reports whether nodes of kind k are produced by the statement
// parser and may therefore stand in a block's statement list.
func (k NodeKind) IsStatement() bool {
	switch k {
	case KindBlock, KindEmptyStmt, KindExprStmt, KindIfStmt, KindWhileStmt,
		KindReturnStmt, KindBreakStmt, KindContinueStmt, KindLocalVarDecl:
		return true
	}
	return false
}

// IsMember reports whether nodes of kind k are produced by the member parser.
func (k NodeKind) IsMember() bool {
	switch k {
	case KindClassDecl, KindInterfaceDecl, KindFieldDecl, KindMethodDecl, KindEmptyDecl:
		return true
	}
	return false
}
