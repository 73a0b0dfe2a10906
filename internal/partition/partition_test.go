/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package partition

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_InvalidCounts(t *testing.T) {
	for _, counts := range [][2]int{{1, 10}, {10, 1}, {0, 0}, {40000, 40000}} {
		_, err := Build(counts[0], counts[1])
		assert.Error(t, err, "counts %v", counts)
	}
}

func TestBuild_Default(t *testing.T) {
	tbl, err := Build(DefaultLeftCells, DefaultRightCells)
	require.NoError(t, err)

	n := tbl.Cells()
	assert.Equal(t, DefaultLeftCells+DefaultRightCells, n)
	assert.Len(t, tbl.X, n+1)
	assert.Equal(t, DefaultLeftCells-1, tbl.Peak)
	assert.Equal(t, 0.0, tbl.X[tbl.Peak+1])
	assert.InDelta(t, -2.0086, tbl.Min(), 1e-3)
	assert.InDelta(t, 3.4867, tbl.Max(), 1e-3)

	for k := 0; k < n; k++ {
		require.True(t, tbl.X[k] < tbl.X[k+1], "breakpoints must increase at %d", k)
		assert.InEpsilon(t, tbl.Area, (tbl.X[k+1]-tbl.X[k])*tbl.Yu[k], 1e-9, "area of cell %d", k)
	}
	assert.InEpsilon(t, tbl.Area, Density(tbl.Max())/tbl.Max(), 1e-6, "tail envelope area")
}

func TestBuild_Envelopes(t *testing.T) {
	tbl, err := Build(200, 220)
	require.NoError(t, err)

	for k := 0; k < tbl.Cells(); k++ {
		left, right := Density(tbl.X[k]), Density(tbl.X[k+1])
		assert.InEpsilon(t, math.Max(left, right), tbl.Yu[k], 1e-12, "upper envelope of cell %d", k)
		assert.InEpsilon(t, math.Min(left, right), tbl.Yl(k), 1e-12, "lower envelope of cell %d", k)
	}
}

func TestBuild_Lookup(t *testing.T) {
	tbl, err := Build(300, 320)
	require.NoError(t, err)

	h := 1 / tbl.InvH
	for k := 0; k < tbl.Cells(); k++ {
		assert.True(t, h <= tbl.X[k+1]-tbl.X[k], "bucket wider than cell %d", k)
	}

	for i, k := range tbl.Ncell {
		v := float64(i-tbl.I0) / tbl.InvH
		if v < tbl.Min() || v >= tbl.Max() {
			continue
		}
		assert.True(t, tbl.X[k] <= v && v < tbl.X[k+1], "bucket %d at %v maps to cell %d", i, v, k)
	}
	assert.Equal(t, tbl.I0+int(math.Floor(tbl.Max()*tbl.InvH))+1, len(tbl.Ncell))
}

func TestTable_Render(t *testing.T) {
	tbl, err := Build(20, 25)
	require.NoError(t, err)

	header := []byte("// header\n\n")
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf, "tbl", header))

	src := buf.String()
	assert.True(t, strings.HasPrefix(src, "// header\n\n// Code generated by rtnorm-table. DO NOT EDIT."))

	f, err := parser.ParseFile(token.NewFileSet(), "table.go", buf.Bytes(), parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "tbl", f.Name.Name)

	names := map[string]bool{}
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			for _, id := range spec.(*ast.ValueSpec).Names {
				names[id.Name] = true
			}
		}
	}
	for _, name := range []string{"cellCount", "peakCell", "xMin", "xMax", "cellArea", "invH", "i0",
		"ylFirst", "ylLast", "partitionX", "partitionYu", "partitionNcell"} {
		assert.True(t, names[name], "%s not declared", name)
	}
	assert.Contains(t, src, "cellCount = 45\n")

	formatted, err := format.Source(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src, string(formatted), "rendered table is not gofmt-clean")
}

func TestDensity(t *testing.T) {
	for _, x := range []float64{0, 1e-8, 0.5, -1, 2, -3.5, 8, 20, -37.5} {
		assert.InEpsilon(t, math.Exp(-x*x/2)/math.Sqrt(2*math.Pi), Density(x), 1e-12, "density at %v", x)
	}
	assert.Equal(t, Density(1.25), Density(-1.25))
	assert.Equal(t, 0.0, Density(40))
	assert.Equal(t, 1.0, expNeg(0))
	assert.True(t, math.IsNaN(expNeg(1)))
}
