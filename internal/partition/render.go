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
	"fmt"
	"go/format"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

const (
	floatsPerLine = 4
	intsPerLine   = 16
)

// Render writes t as Go source for package pkg. The output declares the
// constants and arrays consumed by the sampler.
func (t *Table) Render(w io.Writer, pkg string, header []byte) error {
	var buf bytes.Buffer

	buf.Write(header)
	fmt.Fprintf(&buf, "// Code generated by rtnorm-table. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	fmt.Fprintf(&buf, "const (\n")
	fmt.Fprintf(&buf, "\t// cellCount is the number of cells on [xMin, xMax]; index cellCount\n")
	fmt.Fprintf(&buf, "\t// denotes the right tail.\n")
	fmt.Fprintf(&buf, "\tcellCount = %d\n", t.Cells())
	fmt.Fprintf(&buf, "\t// peakCell is the last cell left of 0.\n")
	fmt.Fprintf(&buf, "\tpeakCell = %d\n", t.Peak)
	fmt.Fprintf(&buf, "\txMin = %s\n", formatFloat(t.Min()))
	fmt.Fprintf(&buf, "\txMax = %s\n", formatFloat(t.Max()))
	fmt.Fprintf(&buf, "\t// cellArea is the area of every envelope rectangle and of the tail envelope.\n")
	fmt.Fprintf(&buf, "\tcellArea = %s\n", formatFloat(t.Area))
	fmt.Fprintf(&buf, "\t// invH is the inverse width of a lookup bucket.\n")
	fmt.Fprintf(&buf, "\tinvH = %s\n", formatFloat(t.InvH))
	fmt.Fprintf(&buf, "\ti0 = %d\n", t.I0)
	fmt.Fprintf(&buf, "\t// ylFirst and ylLast are the lower envelopes of the outermost cells.\n")
	fmt.Fprintf(&buf, "\tylFirst = %s\n", formatFloat(t.Yl(0)))
	fmt.Fprintf(&buf, "\tylLast = %s\n", formatFloat(t.Yl(t.Cells()-1)))
	fmt.Fprintf(&buf, ")\n\n")

	fmt.Fprintf(&buf, "// partitionX holds the cell breakpoints.\n")
	fmt.Fprintf(&buf, "var partitionX = [cellCount + 1]float64{\n")
	writeFloats(&buf, t.X)
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// partitionYu holds the upper density envelope of each cell.\n")
	fmt.Fprintf(&buf, "var partitionYu = [cellCount]float64{\n")
	writeFloats(&buf, t.Yu)
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// partitionNcell maps lookup buckets to cells.\n")
	fmt.Fprintf(&buf, "var partitionNcell = [%d]uint16{\n", len(t.Ncell))
	for i, k := range t.Ncell {
		if i%intsPerLine == 0 {
			buf.WriteByte('\t')
		}
		buf.WriteString(strconv.Itoa(k))
		buf.WriteByte(',')
		if i%intsPerLine == intsPerLine-1 || i == len(t.Ncell)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "generated table is not valid Go")
	}
	_, err = w.Write(src)

	return err
}

func writeFloats(buf *bytes.Buffer, vals []float64) {
	for i, v := range vals {
		if i%floatsPerLine == 0 {
			buf.WriteByte('\t')
		}
		buf.WriteString(formatFloat(v))
		buf.WriteByte(',')
		if i%floatsPerLine == floatsPerLine-1 || i == len(vals)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
