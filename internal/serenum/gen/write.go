package gen

import (
	"maps"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
	"github.com/Embers-of-the-Fire/serenum/internal/words"
)

const serenumerrorsPath = "github.com/Embers-of-the-Fire/serenum/pkg/serenumerrors"

// WriteDefineCode writes the declarations of the enum. Local names are taken
// from a copy of the namespace of w for each function, so they never shadow
// package-level names.
func (e *Enum) WriteDefineCode(w *codefmt.Writer) {
	fork := func() *codefmt.Writer {
		return w.WithNS(maps.Clone(w.NS()))
	}

	e.writeConsts(w)
	e.writeTextFunc(fork())
	e.writeParseFunc(fork())
	e.writeTo(fork())
	e.writeParse(fork())

	cfg := e.dir.Config
	if cfg.MarshalText {
		e.writeMarshalText(fork())
		e.writeUnmarshalText(fork())
	}
	if cfg.MarshalJSON {
		e.writeMarshalJSON(fork())
		e.writeUnmarshalJSON(fork())
	}
	if cfg.SQL {
		e.writeValue(fork())
		e.writeScan(fork())
	}
	if e.Values != "" {
		e.writeValues(w)
	}
	if e.Texts != "" {
		e.writeTexts(w)
	}
}

// enumName is the quoted name of the enum for error messages.
func (e *Enum) enumName() string {
	return strconv.Quote(e.dir.Enum.Name())
}

// recv returns a receiver name for the enum type. It is the initial of the
// type name, or "v" when the initial is not a letter as in "_order".
func (e *Enum) recv(w *codefmt.Writer) string {
	r, _ := utf8.DecodeRuneInString(words.LowerCamel(e.dir.Enum.Name()))
	if !unicode.IsLetter(r) {
		r = 'v'
	}
	return w.Name(string(r))
}

func (e *Enum) writeConsts(w *codefmt.Writer) {
	w.Printf("// Texts of %t\n", e.dir.Enum)
	w.Printf("const (\n")
	for _, v := range e.Variants {
		w.Printf("%s = %s\n", v.ConstName, strconv.Quote(v.Text))
	}
	w.Printf(")\n\n")
}

func (e *Enum) writeTextFunc(w *codefmt.Writer) {
	varV := w.Name("v")
	w.Printf("func %s(%s %t) (string, bool) {\n", e.TextFunc, varV, e.dir.Enum)
	w.Printf("switch %s {\n", varV)
	for _, v := range e.Variants {
		w.Printf("case %o:\n", v.Const)
		w.Printf("return %s, true\n", v.ConstName)
	}
	w.Printf("}\n")
	w.Printf("return \"\", false\n")
	w.Printf("}\n\n")
}

func (e *Enum) writeParseFunc(w *codefmt.Writer) {
	varText := w.Name("text")
	varZero := w.Name("zero")
	w.Printf("func %s(%s string) (%t, bool) {\n", e.ParseFunc, varText, e.dir.Enum)
	w.Printf("switch %s {\n", varText)
	for _, v := range e.Variants {
		w.Printf("case %s:\n", v.ConstName)
		w.Printf("return %o, true\n", v.Const)
	}
	w.Printf("}\n")
	w.Printf("var %s %t\n", varZero, e.dir.Enum)
	w.Printf("return %s, false\n", varZero)
	w.Printf("}\n\n")
}

func (e *Enum) writeTo(w *codefmt.Writer) {
	varFmt := w.Import("fmt", "fmt")
	recv := e.recv(w)
	varText := w.Name("text")
	varOK := w.Name("ok")

	w.Printf("// %s returns the text of %s. For a value which is not a variant, it\n", e.To, recv)
	w.Printf("// returns the type name with the value like %s(%s).\n", e.dir.Enum.Name(), e.sample())
	w.Printf("func (%s %t) %s() string {\n", recv, e.dir.Enum, e.To)
	w.Printf("if %s, %s := %s(%s); %s {\n", varText, varOK, e.TextFunc, recv, varOK)
	w.Printf("return %s\n", varText)
	w.Printf("}\n")
	w.Printf("return %s.Sprintf(%s, %t(%s))\n", varFmt, strconv.Quote(e.dir.Enum.Name()+"(%#v)"), e.dir.Enum.Basic, recv)
	w.Printf("}\n\n")
}

// sample returns an example underlying value for the doc comment.
func (e *Enum) sample() string {
	if e.dir.Enum.IsString() {
		return `"..."`
	}
	return "42"
}

func (e *Enum) writeParse(w *codefmt.Writer) {
	varText := w.Name("text")

	if e.dir.Doc != nil {
		for _, c := range e.dir.Doc.List {
			w.Printf("%s\n", c.Text)
		}
	} else {
		w.Printf("// %s returns the variant of %t for the text.\n", e.Parse, e.dir.Enum)
	}

	if !e.dir.Err {
		w.Printf("func %s(%s string) (%t, bool) {%s\n", e.Parse, varText, e.dir.Enum, e.trailingComment())
		w.Printf("return %s(%s)\n", e.ParseFunc, varText)
		w.Printf("}\n\n")
		return
	}

	varErrors := w.Import(serenumerrorsPath, "serenumerrors")
	varV := w.Name("v")
	varOK := w.Name("ok")
	w.Printf("func %s(%s string) (%t, error) {%s\n", e.Parse, varText, e.dir.Enum, e.trailingComment())
	w.Printf("%s, %s := %s(%s)\n", varV, varOK, e.ParseFunc, varText)
	w.Printf("if !%s {\n", varOK)
	w.Printf("return %s, %s.NoMatch(%s, %s)\n", varV, varErrors, e.enumName(), varText)
	w.Printf("}\n")
	w.Printf("return %s, nil\n", varV)
	w.Printf("}\n\n")
}

// trailingComment returns the trailing comment of the directive variable to
// follow the signature of the parse function, or "".
func (e *Enum) trailingComment() string {
	if e.dir.Comment == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range e.dir.Comment.List {
		if strings.HasPrefix(c.Text, "/*") {
			// A block comment may span lines.
			continue
		}
		b.WriteString(" ")
		b.WriteString(c.Text)
	}
	return b.String()
}

// writeTextOrFail writes code to look up the text of recv into varText, or to
// return an invalid value error with the given zero result.
func (e *Enum) writeTextOrFail(w *codefmt.Writer, recv, varText, zero string) {
	varErrors := w.Import(serenumerrorsPath, "serenumerrors")
	varOK := w.Name("ok")
	w.Printf("%s, %s := %s(%s)\n", varText, varOK, e.TextFunc, recv)
	w.Printf("if !%s {\n", varOK)
	w.Printf("return %s, %s.InvalidValue(%s, %t(%s))\n", zero, varErrors, e.enumName(), e.dir.Enum.Basic, recv)
	w.Printf("}\n")
}

// writeParseOrFail writes code to parse varText and to store the variant to
// *recv, or to return a no match error.
func (e *Enum) writeParseOrFail(w *codefmt.Writer, recv, varText string) {
	varErrors := w.Import(serenumerrorsPath, "serenumerrors")
	varV := w.Name("v")
	varOK := w.Name("ok")
	w.Printf("%s, %s := %s(%s)\n", varV, varOK, e.ParseFunc, varText)
	w.Printf("if !%s {\n", varOK)
	w.Printf("return %s.NoMatch(%s, %s)\n", varErrors, e.enumName(), varText)
	w.Printf("}\n")
	w.Printf("*%s = %s\n", recv, varV)
	w.Printf("return nil\n")
}

func (e *Enum) writeMarshalText(w *codefmt.Writer) {
	recv := e.recv(w)
	varText := w.Name("text")

	w.Printf("// MarshalText implements [encoding.TextMarshaler].\n")
	w.Printf("func (%s %t) MarshalText() ([]byte, error) {\n", recv, e.dir.Enum)
	e.writeTextOrFail(w, recv, varText, "nil")
	w.Printf("return []byte(%s), nil\n", varText)
	w.Printf("}\n\n")
}

func (e *Enum) writeUnmarshalText(w *codefmt.Writer) {
	recv := e.recv(w)
	varData := w.Name("data")

	w.Printf("// UnmarshalText implements [encoding.TextUnmarshaler].\n")
	w.Printf("func (%s *%t) UnmarshalText(%s []byte) error {\n", recv, e.dir.Enum, varData)
	e.writeParseOrFail(w, recv, "string("+varData+")")
	w.Printf("}\n\n")
}

func (e *Enum) writeMarshalJSON(w *codefmt.Writer) {
	varJSON := w.Import("encoding/json", "json")
	recv := e.recv(w)
	varText := w.Name("text")

	w.Printf("// MarshalJSON implements [json.Marshaler]. It encodes the text as a JSON\n")
	w.Printf("// string.\n")
	w.Printf("func (%s %t) MarshalJSON() ([]byte, error) {\n", recv, e.dir.Enum)
	e.writeTextOrFail(w, recv, varText, "nil")
	w.Printf("return %s.Marshal(%s)\n", varJSON, varText)
	w.Printf("}\n\n")
}

func (e *Enum) writeUnmarshalJSON(w *codefmt.Writer) {
	varJSON := w.Import("encoding/json", "json")
	recv := e.recv(w)
	varData := w.Name("data")
	varText := w.Name("text")
	varErr := w.Name("err")

	w.Printf("// UnmarshalJSON implements [json.Unmarshaler]. It decodes a JSON string. A\n")
	w.Printf("// JSON null leaves %s unchanged.\n", recv)
	w.Printf("func (%s *%t) UnmarshalJSON(%s []byte) error {\n", recv, e.dir.Enum, varData)
	w.Printf("if string(%s) == \"null\" {\n", varData)
	w.Printf("return nil\n")
	w.Printf("}\n")
	w.Printf("var %s string\n", varText)
	w.Printf("if %s := %s.Unmarshal(%s, &%s); %s != nil {\n", varErr, varJSON, varData, varText, varErr)
	w.Printf("return %s\n", varErr)
	w.Printf("}\n")
	e.writeParseOrFail(w, recv, varText)
	w.Printf("}\n\n")
}

func (e *Enum) writeValue(w *codefmt.Writer) {
	varDriver := w.Import("database/sql/driver", "driver")
	recv := e.recv(w)
	varText := w.Name("text")

	w.Printf("// Value implements [driver.Valuer]. It stores the text.\n")
	w.Printf("func (%s %t) Value() (%s.Value, error) {\n", recv, e.dir.Enum, varDriver)
	e.writeTextOrFail(w, recv, varText, "nil")
	w.Printf("return %s, nil\n", varText)
	w.Printf("}\n\n")
}

func (e *Enum) writeScan(w *codefmt.Writer) {
	varFmt := w.Import("fmt", "fmt")
	recv := e.recv(w)
	varSrc := w.Name("src")
	varText := w.Name("text")

	w.Printf("// Scan implements [sql.Scanner]. It accepts a string or a []byte. A NULL is\n")
	w.Printf("// rejected; scan a nullable column into sql.Null[%t].\n", e.dir.Enum)
	w.Printf("func (%s *%t) Scan(%s any) error {\n", recv, e.dir.Enum, varSrc)
	w.Printf("var %s string\n", varText)
	w.Printf("switch %s := %s.(type) {\n", varSrc, varSrc)
	w.Printf("case string:\n")
	w.Printf("%s = %s\n", varText, varSrc)
	w.Printf("case []byte:\n")
	w.Printf("%s = string(%s)\n", varText, varSrc)
	w.Printf("case nil:\n")
	w.Printf("return %s.Errorf(\"scanning %%s: unsupported NULL\", %s)\n", varFmt, e.enumName())
	w.Printf("default:\n")
	w.Printf("return %s.Errorf(\"scanning %%s: unsupported type %%T\", %s, %s)\n", varFmt, e.enumName(), varSrc)
	w.Printf("}\n")
	e.writeParseOrFail(w, recv, varText)
	w.Printf("}\n\n")
}

func (e *Enum) writeValues(w *codefmt.Writer) {
	names := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		names[i] = w.Sprintf("%o", v.Const)
	}

	w.Printf("// %s returns all variants of %t in declaration order.\n", e.Values, e.dir.Enum)
	w.Printf("func %s() []%t {\n", e.Values, e.dir.Enum)
	w.Printf("return []%t{%s}\n", e.dir.Enum, strings.Join(names, ", "))
	w.Printf("}\n\n")
}

func (e *Enum) writeTexts(w *codefmt.Writer) {
	names := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		names[i] = v.ConstName
	}

	w.Printf("// %s returns the texts of all variants of %t in declaration order.\n", e.Texts, e.dir.Enum)
	w.Printf("func %s() []string {\n", e.Texts)
	w.Printf("return []string{%s}\n", strings.Join(names, ", "))
	w.Printf("}\n\n")
}
