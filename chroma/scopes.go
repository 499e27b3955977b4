package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
)

// ScopeForTokenType maps a chroma token type to the conventional TextMate
// scope name theme files target. Returns an empty string for token types
// with no scope, which leaves the token with just the source root scope.
func ScopeForTokenType(tt chromalib.TokenType) string {
	switch tt {
	// Type keywords (handled separately from other keywords)
	case chromalib.KeywordType, chromalib.KeywordDeclaration:
		return "storage.type"

	// Keywords
	case chromalib.Keyword, chromalib.KeywordPseudo, chromalib.KeywordReserved:
		return "keyword.control"
	case chromalib.KeywordNamespace:
		return "keyword.control.import"
	case chromalib.KeywordConstant:
		return "constant.language"

	// Comments
	case chromalib.CommentSingle, chromalib.CommentHashbang:
		return "comment.line"
	case chromalib.CommentMultiline, chromalib.CommentSpecial:
		return "comment.block"
	case chromalib.Comment, chromalib.CommentPreproc, chromalib.CommentPreprocFile:
		return "comment"

	// Strings
	case chromalib.StringDouble:
		return "string.quoted.double"
	case chromalib.StringSingle, chromalib.StringChar:
		return "string.quoted.single"
	case chromalib.StringBacktick, chromalib.StringHeredoc:
		return "string.quoted.other"
	case chromalib.StringEscape:
		return "constant.character.escape"
	case chromalib.StringRegex:
		return "string.regexp"
	case chromalib.String, chromalib.StringAffix, chromalib.StringDelimiter,
		chromalib.StringDoc, chromalib.StringInterpol, chromalib.StringOther,
		chromalib.StringSymbol:
		return "string"

	// Numbers
	case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat,
		chromalib.NumberHex, chromalib.NumberInteger,
		chromalib.NumberIntegerLong, chromalib.NumberOct:
		return "constant.numeric"

	// Operators
	case chromalib.Operator, chromalib.OperatorWord:
		return "keyword.operator"

	// Function names
	case chromalib.NameFunction, chromalib.NameFunctionMagic:
		return "entity.name.function"

	// Types and classes
	case chromalib.NameClass:
		return "entity.name.type.class"
	case chromalib.NameBuiltin, chromalib.NameBuiltinPseudo:
		return "support.function.builtin"

	// Constants and variables
	case chromalib.NameConstant:
		return "constant.other"
	case chromalib.NameVariable, chromalib.NameVariableClass,
		chromalib.NameVariableGlobal, chromalib.NameVariableInstance,
		chromalib.NameVariableMagic:
		return "variable.other"

	// Punctuation
	case chromalib.Punctuation:
		return "punctuation"

	// Lexer errors
	case chromalib.Error:
		return "invalid.illegal"

	default:
		return ""
	}
}
