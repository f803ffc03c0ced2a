package render

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mag/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mag/internal/core/domain"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{1000, "1000"},
		{0.0254, "0.0254"},
		{-273.15, "-273.15"},
		{2.0 / 3.0, "0.6666666666666666"},
		{1e-9, "0.000000001"},
		{1609.344, "1609.344"},
		{1.6605390666e-24, "1.6605390666e-24"},
		{1.98847e33, "1.98847e+33"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.in))
		})
	}
}

func TestGoSource_Render(t *testing.T) {
	table := &domain.UnitTable{
		Package: "thermo",
		Measure: domain.MeasureTemperature,
		Base:    "kelvin",
		Source:  "scales.toml",
		Units: []domain.UnitSpec{
			{Name: "DegC", Label: "°C", Factor: 1, Zero: -273.15, Doc: "Degrees Celsius"},
			{Name: "DegK", Label: "°K", Factor: 1},
		},
	}

	src, err := NewGoSource().Render(table)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by unitgen from scales.toml. DO NOT EDIT.\n")
	assert.Contains(t, out, "package thermo\n")
	assert.Contains(t, out, "// DegC is a unit of temperature: Degrees Celsius.\n")
	assert.Contains(t, out, "// DegK is a unit of temperature.\n")
	assert.Contains(t, out, "type DegC struct{ mag.Temperature }\n")
	assert.Contains(t, out, `func (DegC) Label() string { return "°C" }`)
	assert.Contains(t, out, "// Factor returns the number of kelvins in one °K.\n")
	assert.Contains(t, out, "func (DegC) Zero() float64 { return -273.15 }")
	assert.NotContains(t, out, "func (DegK) Zero()")
	assert.NotContains(t, out, "Inverse()")
	assert.Contains(t, out, "\t_ mag.TemperatureUnit = DegK{}\n")
	assert.Contains(t, out, "// Units lists every temperature unit declared in scales.toml.\n")
	assert.Contains(t, out, "\tmag.Describe(\"DegC\", DegC{}),\n")
}

func TestGoSource_Render_DefaultSource(t *testing.T) {
	table := &domain.UnitTable{
		Package: "chrono",
		Measure: domain.MeasureTime,
		Base:    "second",
		Units:   []domain.UnitSpec{{Name: "Second", Label: "s", Factor: 1, Inverse: "Hz"}},
	}

	src, err := NewGoSource().Render(table)
	require.NoError(t, err)

	assert.Contains(t, string(src), "from units.toml. DO NOT EDIT.")
	assert.Contains(t, string(src), `func (Second) Inverse() string { return "Hz" }`)
	assert.Empty(t, table.Source, "caller's table must not be modified")
}

func TestGoSource_Render_Parses(t *testing.T) {
	table := &domain.UnitTable{
		Package: "length",
		Measure: domain.MeasureLength,
		Base:    "meter",
		Units: []domain.UnitSpec{
			{Name: "Km", Label: "km", Factor: 1000},
			{Name: "Um", Label: "μm", Factor: 1e-6, Doc: `Micrometer "micron"`},
		},
	}

	src, err := NewGoSource().Render(table)
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "units_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "length", f.Name.Name)
	require.Len(t, f.Imports, 1)
	assert.Equal(t, `"github.com/custodia-labs/mag"`, f.Imports[0].Path.Value)

	var types, funcs int
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			funcs++
		case *ast.GenDecl:
			if d.Tok == token.TYPE {
				types++
			}
		}
	}
	assert.Equal(t, 2, types)
	assert.Equal(t, 4, funcs)
}

func TestGoSource_Render_Deterministic(t *testing.T) {
	table := &domain.UnitTable{
		Package: "mass",
		Measure: domain.MeasureMass,
		Base:    "gram",
		Units:   []domain.UnitSpec{{Name: "G", Label: "g", Factor: 1}, {Name: "Kg", Label: "kg", Factor: 1000}},
	}

	first, err := NewGoSource().Render(table)
	require.NoError(t, err)
	second, err := NewGoSource().Render(table)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// The checked-in units_gen.go files must match what the generator emits
// for the checked-in tables.
func TestGoSource_Render_ShippedTablesUpToDate(t *testing.T) {
	root := filepath.Join("..", "..", "..", "..")
	store := file.NewTableStore()

	for _, pkg := range []string{"length", "mass", "chrono", "temp"} {
		t.Run(pkg, func(t *testing.T) {
			table, err := store.Load(filepath.Join(root, pkg, "units.toml"))
			require.NoError(t, err)

			got, err := NewGoSource().Render(table)
			require.NoError(t, err)

			want, err := os.ReadFile(filepath.Join(root, pkg, "units_gen.go"))
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), "run go generate ./%s", pkg)
		})
	}
}
