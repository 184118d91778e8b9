// Package serenumanalysis provides an analyzer which reports invalid Serenum
// directives without generating code. Run it with the serenum build tag so
// that the directive files are analyzed.
package serenumanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/Embers-of-the-Fire/serenum/internal/codefmt"
	serenuminternal "github.com/Embers-of-the-Fire/serenum/internal/serenum"
)

// Analyzer validates the usage of Serenum in the package.
var Analyzer = &analysis.Analyzer{
	Name: "serenum",
	Doc:  "linter for serenum usage",
	Run:  run,

	// Code outside the directive files often uses generated methods which do
	// not exist under the serenum tag.
	RunDespiteErrors: true,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	se, err := serenuminternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := se.Build(); err != nil {
		for _, err := range codefmt.Flatten(err) {
			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Message(),
				})
			}
		}
	}

	return nil, nil
}
