// Package polaris reads tracker exports from an NDI Polaris optical tracking system.
//
// An export is a CSV file with a "Frame" column and, per tool, the columns
// "<tool> State", "<tool> Q0", "<tool> Qx", "<tool> Qy", "<tool> Qz", "<tool> Tx", "<tool> Ty" and
// "<tool> Tz". Columns whose header mentions "Port" are ignored, as are any other unrecognized columns.
package polaris

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/jcs/anatomy"
)

// StateMissing is the tool state reported when a tool is out of view.
const StateMissing = "Missing"

const (
	frameColumn = "Frame"
	portMarker  = "Port"
)

// toolColumns are the per-tool column suffixes, in the order their values are read.
var toolColumns = [...]string{"State", "Q0", "Qx", "Qy", "Qz", "Tx", "Ty", "Tz"}

// Row is one captured frame. Tools that were not visible have no entry in Readings.
type Row struct {
	Frame    int
	Readings map[string]anatomy.ProbeData
}

// Recording is a parsed export.
type Recording struct {
	// Tools in the order they first appear in the header.
	Tools []string
	Rows  []Row
}

// ReadFile reads the export at path.
func ReadFile(path string) (*Recording, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		//nolint:errcheck
		f.Close()
	}()
	rec, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return rec, nil
}

// Read parses an export.
func Read(r io.Reader) (*Recording, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	layout, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	rec := &Recording{Tools: layout.tools}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		row, err := layout.parseRow(record)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		rec.Rows = append(rec.Rows, row)
	}
	return rec, nil
}

type layout struct {
	frame int
	tools []string
	// column index of every toolColumns entry, per tool
	columns map[string][len(toolColumns)]int
}

func parseHeader(header []string) (*layout, error) {
	l := &layout{frame: -1, columns: map[string][len(toolColumns)]int{}}
	seen := map[string]map[string]bool{}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.Contains(name, portMarker) {
			continue
		}
		if name == frameColumn {
			l.frame = i
			continue
		}
		tool, suffix, ok := splitToolColumn(name)
		if !ok {
			continue
		}
		if _, ok := seen[tool]; !ok {
			seen[tool] = map[string]bool{}
			l.tools = append(l.tools, tool)
		}
		if seen[tool][suffix] {
			return nil, errors.Errorf("duplicate column %q", name)
		}
		seen[tool][suffix] = true
		cols := l.columns[tool]
		for j, s := range toolColumns {
			if s == suffix {
				cols[j] = i
			}
		}
		l.columns[tool] = cols
	}

	if l.frame < 0 {
		return nil, errors.Errorf("missing %q column", frameColumn)
	}
	for _, tool := range l.tools {
		for _, s := range toolColumns {
			if !seen[tool][s] {
				return nil, errors.Errorf("tool %q is missing column %q", tool, tool+" "+s)
			}
		}
	}
	return l, nil
}

func splitToolColumn(name string) (tool, suffix string, ok bool) {
	idx := strings.LastIndex(name, " ")
	if idx <= 0 {
		return "", "", false
	}
	tool, suffix = strings.TrimSpace(name[:idx]), name[idx+1:]
	for _, s := range toolColumns {
		if s == suffix {
			return tool, suffix, true
		}
	}
	return "", "", false
}

func (l *layout) parseRow(record []string) (Row, error) {
	frame, err := strconv.Atoi(strings.TrimSpace(record[l.frame]))
	if err != nil {
		return Row{}, errors.Wrap(err, "parsing frame")
	}
	row := Row{Frame: frame, Readings: map[string]anatomy.ProbeData{}}

tools:
	for _, tool := range l.tools {
		cols := l.columns[tool]
		if strings.EqualFold(strings.TrimSpace(record[cols[0]]), StateMissing) {
			continue
		}
		var v [len(toolColumns) - 1]float64
		for j := range v {
			cell := strings.TrimSpace(record[cols[j+1]])
			if cell == "" {
				continue tools
			}
			if v[j], err = strconv.ParseFloat(cell, 64); err != nil {
				return Row{}, errors.Wrapf(err, "tool %q column %q", tool, toolColumns[j+1])
			}
		}
		p, err := anatomy.NewProbeData(tool, strings.TrimSpace(record[cols[0]]), v[0], v[1], v[2], v[3],
			r3.Vector{X: v[4], Y: v[5], Z: v[6]})
		if err != nil {
			return Row{}, err
		}
		row.Readings[tool] = p
	}
	return row, nil
}
