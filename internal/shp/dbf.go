package shp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field describes one column of a DBF attribute table.
type Field struct {
	Name     string
	Type     byte // C text, N/F numeric, L logical, D date
	Length   int
	Decimals int
}

// readTable decodes a DBF attribute table into its field descriptors
// and raw value rows. Deleted rows (0x2A flag) are skipped. Every
// returned row has exactly one value per field.
func readTable(data []byte) ([]Field, [][]any, error) {
	if len(data) < 32 {
		return nil, nil, fmt.Errorf("dbf: header truncated at %d bytes", len(data))
	}

	recCount := int(binary.LittleEndian.Uint32(data[4:8]))
	headerLen := int(binary.LittleEndian.Uint16(data[8:10]))
	recordLen := int(binary.LittleEndian.Uint16(data[10:12]))

	if headerLen < 33 || headerLen > len(data) {
		return nil, nil, fmt.Errorf("dbf: bad header length %d", headerLen)
	}

	// Field descriptors are 32 byte blocks from offset 32 up to the
	// 0x0D terminator.
	var fields []Field
	for off := 32; off+32 <= headerLen && data[off] != 0x0D; off += 32 {
		desc := data[off : off+32]
		fields = append(fields, Field{
			Name:     string(bytes.TrimRight(desc[0:11], "\x00")),
			Type:     desc[11],
			Length:   int(desc[16]),
			Decimals: int(desc[17]),
		})
	}

	width := 1 // deletion flag byte
	for _, f := range fields {
		width += f.Length
	}
	if recordLen < width {
		return nil, nil, fmt.Errorf("dbf: record length %d below field widths %d", recordLen, width)
	}

	rows := make([][]any, 0, recCount)
	for i := 0; i < recCount; i++ {
		off := headerLen + i*recordLen
		if off+recordLen > len(data) {
			return nil, nil, fmt.Errorf("dbf: row %d overruns file", i)
		}

		raw := data[off : off+recordLen]
		if raw[0] == '*' {
			continue
		}

		row := make([]any, 0, len(fields))
		pos := 1
		for _, f := range fields {
			row = append(row, parseValue(f, raw[pos:pos+f.Length]))
			pos += f.Length
		}

		rows = append(rows, row)
	}

	return fields, rows, nil
}

// parseValue converts one fixed-width cell into a Go value. Cells that
// cannot be parsed under their declared type come back as nil rather
// than as wrong data.
func parseValue(f Field, cell []byte) any {
	s := strings.TrimSpace(string(cell))

	switch f.Type {
	case 'N', 'F':
		if s == "" {
			return nil
		}
		if f.Decimals == 0 && !strings.ContainsAny(s, ".eE") {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n
			}
		}
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			return x
		}
		return nil

	case 'L':
		switch s {
		case "Y", "y", "T", "t", "1":
			return true
		case "N", "n", "F", "f", "0":
			return false
		}
		return nil

	case 'D':
		if t, err := time.Parse("20060102", s); err == nil {
			return t
		}
		return nil

	default: // 'C' and unrecognized types stay textual
		return s
	}
}
