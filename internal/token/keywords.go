package token

var keywords = map[string]Kind{
	"struct":   KwStruct,
	"resource": KwResource,
	"fn":       KwFn,
	"let":      KwLet,
	"mut":      KwMut,
	"managed":  KwManaged,
	"ref":      KwRef,
	"inout":    KwInout,
	"return":   KwReturn,
	"println":  KwPrintln,
	"cleanup":  KwCleanup,
	"true":     KwTrue,
	"false":    KwFalse,
	"int":      KwInt,
	"bool":     KwBool,
	"unit":     KwUnit,
}

// LookupKeyword returns the keyword's Kind and true, or (Invalid, false) if
// ident is not a reserved word. Keywords are case-sensitive; only the exact
// lowercase spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
