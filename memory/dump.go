package memory

import (
	"fmt"
	"io"
	"strings"
)

const (
	DUMP_WIDTH = 16  // Bytes per dump row.
	DUMP_LIMIT = 256 // Maximum bytes rendered by Dump.
)

// dump renders data as rows of hex bytes followed by their ASCII form.
// Unprintable bytes show as '?'.
func dump(w io.Writer, base uint, data []byte) (err error) {
	if len(data) > DUMP_LIMIT {
		data = data[:DUMP_LIMIT]
	}

	for row := 0; row < len(data); row += DUMP_WIDTH {
		end := min(row+DUMP_WIDTH, len(data))
		line := data[row:end]

		var sb strings.Builder
		fmt.Fprintf(&sb, "%08X ", base+uint(row))
		for n := range DUMP_WIDTH {
			if n < len(line) {
				fmt.Fprintf(&sb, " %02X", line[n])
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("  ")
		for _, b := range line {
			if b >= 0x20 && b < 0x7f {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')

		_, err = io.WriteString(w, sb.String())
		if err != nil {
			return
		}
	}

	return
}
