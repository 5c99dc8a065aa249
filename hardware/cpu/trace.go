// This file is part of Gopherswan.
//
// Gopherswan is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherswan is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherswan.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"bufio"
	"fmt"
	"io"
)

// tracer writes a line for every instruction executed by the CPU. the line
// is written after prefixes have been consumed and before the instruction is
// executed, so the register values are those seen by the instruction.
type tracer struct {
	w *bufio.Writer
}

// SetTracer sets the destination for the instruction trace. A nil writer
// turns tracing off. Any previous trace is flushed.
func (mc *CPU) SetTracer(w io.Writer) error {
	if err := mc.FlushTrace(); err != nil {
		return err
	}
	if w == nil {
		mc.trace = nil
		return nil
	}
	mc.trace = &tracer{w: bufio.NewWriter(w)}
	return nil
}

// FlushTrace writes any buffered trace output.
func (mc *CPU) FlushTrace() error {
	if mc.trace == nil {
		return nil
	}
	if err := mc.trace.w.Flush(); err != nil {
		return fmt.Errorf("cpu: trace: %w", err)
	}
	return nil
}

func (tr *tracer) instruction(mc *CPU) {
	var rep string
	switch mc.rep {
	case 0xf2:
		rep = "repne "
	case 0xf3:
		rep = "rep "
	}
	fmt.Fprintf(tr.w, "%04x:%04x %s%02x  %s\n", mc.CS.Value(), mc.start, rep, mc.opcode, mc.File.String())
}
