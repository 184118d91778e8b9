// Package golangcilintserenum registers the Serenum analyzer as a golangci-lint
// module plugin. Build a custom golangci-lint binary at this directory with:
//
//	golangci-lint custom
//
// The directive files are analyzed only when the serenum build tag is set in
// the run.build-tags setting of golangci-lint.
package golangcilintserenum

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/Embers-of-the-Fire/serenum/pkg/serenumanalysis"
)

func init() {
	register.Plugin("serenum", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return SerenumLinter{}, nil
}

type SerenumLinter struct{}

func (SerenumLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{serenumanalysis.Analyzer}, nil
}

// GetLoadMode asks for type information, which the directives are resolved
// with.
func (SerenumLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
