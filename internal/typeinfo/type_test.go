package typeinfo_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Embers-of-the-Fire/serenum/internal/typeinfo"
)

func parse(code string) (*ast.File, *types.Info, *types.Package, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.AllErrors)
	if err != nil {
		return nil, nil, nil, err
	}

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	pkg, err := (&types.Config{}).Check("pkg", fset, []*ast.File{file}, info)
	if err != nil {
		return nil, nil, nil, err
	}

	return file, info, pkg, nil
}

func parseType(typeExpr string) (types.Type, error) {
	_, _, pkg, err := parse(fmt.Sprintf("package p; var x %s", typeExpr))
	if err != nil {
		return nil, err
	}
	x := pkg.Scope().Lookup("x")
	return x.Type(), nil
}

func parseNamed(t *testing.T, code, name string) typeinfo.Type {
	t.Helper()
	_, _, pkg, err := parse(code)
	require.NoError(t, err)
	obj := pkg.Scope().Lookup(name)
	require.NotNil(t, obj, name)
	return typeinfo.TypeOf(obj.Type())
}

func TestTypeIdentical(t *testing.T) {
	ty1, err := parseType("int")
	require.NoError(t, err)

	ty2, err := parseType("int")
	require.NoError(t, err)

	ti1 := typeinfo.TypeOf(ty1)
	ti2 := typeinfo.TypeOf(ty2)
	assert.True(t, ti1.Identical(ti2))
	assert.True(t, ti2.Identical(ti1))
}

func TestTypeNotIdentical(t *testing.T) {
	ty1, err := parseType("int")
	require.NoError(t, err)

	ty2, err := parseType("string")
	require.NoError(t, err)

	ti1 := typeinfo.TypeOf(ty1)
	ti2 := typeinfo.TypeOf(ty2)
	assert.False(t, ti1.Identical(ti2))
	assert.False(t, ti2.Identical(ti1))
}

func TestTypeOfBasic(t *testing.T) {
	ty, err := parseType("int")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsBasic())
	assert.False(t, ti.IsNamed())
	assert.False(t, ti.IsEnum())
}

func TestTypeOfPointer(t *testing.T) {
	ty, err := parseType("**int")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsPointer())
	assert.True(t, ti.Elem.IsPointer())
	assert.True(t, ti.Deref().IsBasic())
}

func TestTypeOfOthers(t *testing.T) {
	for _, expr := range []string{"[]int", "map[string]int", "struct{}", "func()", "chan int"} {
		ty, err := parseType(expr)
		require.NoError(t, err, expr)

		ti := typeinfo.TypeOf(ty)
		assert.False(t, ti.IsBasic(), expr)
		assert.False(t, ti.IsNamed(), expr)
		assert.False(t, ti.IsEnum(), expr)
	}
}

func TestTypeOfNamed(t *testing.T) {
	ti := parseNamed(t, `
package p
type Order int
`, "Order")

	assert.True(t, ti.IsNamed())
	assert.True(t, ti.IsBasic())
	assert.Equal(t, "Order", ti.Name())
	assert.Equal(t, "pkg", ti.Pkg().Path())
	assert.True(t, ti.Pos().IsValid())
}

func TestTypeIsEnum(t *testing.T) {
	tests := []struct {
		underlying string
		enum       bool
		str        bool
	}{
		{"int", true, false},
		{"uint8", true, false},
		{"int64", true, false},
		{"float64", true, false},
		{"string", true, true},
		{"bool", false, false},
		{"complex128", false, false},
		{"[]byte", false, false},
		{"struct{}", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.underlying, func(t *testing.T) {
			ti := parseNamed(t, "package p; type E "+tt.underlying, "E")
			assert.Equal(t, tt.enum, ti.IsEnum())
			assert.Equal(t, tt.str, ti.IsString())
		})
	}
}

func TestTypeIsEnumAlias(t *testing.T) {
	ti := parseNamed(t, `
package p
type Order int
type Alias = Order
var x Alias
`, "x")
	assert.True(t, ti.IsEnum())
	assert.Equal(t, "Order", ti.Name())
}

func TestTypeMethod(t *testing.T) {
	ti := parseNamed(t, `
package p
type Order int
func (Order) String() string { return "" }
func (*Order) Set(string) {}
`, "Order")

	_, ok := ti.Method("String")
	assert.True(t, ok)

	_, ok = ti.Method("Set")
	assert.True(t, ok, "pointer receiver methods are found too")

	_, ok = ti.Method("MarshalText")
	assert.False(t, ok)
}

func TestTypeOfGeneric(t *testing.T) {
	file, info, _, err := parse(`
package p
type A[T, U any] struct{ x T; y U }
type B[U any] A[int, U]
type C A[int, int]
`)
	require.NoError(t, err)

	nthTypeExpr := func(n int) ast.Expr {
		return file.Decls[n].(*ast.GenDecl).Specs[0].(*ast.TypeSpec).Type
	}

	tyA := info.TypeOf(nthTypeExpr(0))
	tiA := typeinfo.TypeOf(tyA)
	assert.True(t, tiA.IsGeneric())

	tyB := info.TypeOf(nthTypeExpr(1))
	tiB := typeinfo.TypeOf(tyB)
	assert.True(t, tiB.IsGeneric())

	tyC := info.TypeOf(nthTypeExpr(2))
	tiC := typeinfo.TypeOf(tyC)
	assert.False(t, tiC.IsGeneric())
}

func TestTypeRef(t *testing.T) {
	ty, err := parseType("int")
	require.NoError(t, err)
	ti := typeinfo.TypeOf(ty)

	ref := ti.Ref()
	assert.True(t, ref.IsPointer())
	assert.True(t, ref.Elem.Identical(ti))
}

func TestRegistry(t *testing.T) {
	_, _, pkg, err := parse(`
package p
type Order int
type Color string
var a, b Order
`)
	require.NoError(t, err)

	order := typeinfo.TypeOf(pkg.Scope().Lookup("Order").Type())
	color := typeinfo.TypeOf(pkg.Scope().Lookup("Color").Type())
	orderOfA := typeinfo.TypeOf(pkg.Scope().Lookup("a").Type())

	r := typeinfo.NewRegistry[string]()

	_, ok := r.Put(order, "first")
	assert.True(t, ok)

	old, ok := r.Put(orderOfA, "second")
	assert.False(t, ok)
	assert.Equal(t, "first", old)

	_, ok = r.Put(color, "third")
	assert.True(t, ok)

	old, ok = r.Put(color, "fourth")
	assert.False(t, ok)
	assert.Equal(t, "third", old)
}
