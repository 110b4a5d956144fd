// Package logimport reads lithology segments out of HTML well logs, such as
// the Excel and Word exports of the field application.
package logimport

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ihbirlik/geocoord-pro/internal/domain"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/bst"
)

var ErrNoLogTable = errors.New("no lithology table found")

type column int

const (
	colUnknown column = iota
	colStart
	colEnd
	colInterval
	colFormation
	colDescription
	colRQD
	colWeathering
	colLugeon
	colStatus
)

// headerPrefixes maps lower-cased header text prefixes to columns. Order
// matters: "litoloji tanımlama" must be tried before "tanımlama".
var headerPrefixes = []struct {
	prefix string
	col    column
}{
	{"başlangıç", colStart},
	{"start", colStart},
	{"from", colStart},
	{"bitiş", colEnd},
	{"end", colEnd},
	{"to", colEnd},
	{"aralık", colInterval},
	{"interval", colInterval},
	{"formasyon", colFormation},
	{"formation", colFormation},
	{"litoloji tanımlama", colDescription},
	{"tanımlama", colDescription},
	{"description", colDescription},
	{"rqd", colRQD},
	{"ayrışma", colWeathering},
	{"weathering", colWeathering},
	{"lugeon", colLugeon},
	{"durum", colStatus},
	{"geçirimlilik", colStatus},
	{"status", colStatus},
	{"permeability", colStatus},
}

func classifyHeader(text string) column {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, h := range headerPrefixes {
		if strings.HasPrefix(text, h.prefix) {
			return h.col
		}
	}
	return colUnknown
}

// ParseHTML extracts segments from the first table that carries a recognised
// depth header row. Each segment gets a fresh id. Its permeability status is
// derived from the Lugeon value when one is present.
func ParseHTML(r io.Reader, ids bst.IDProvider) ([]*domain.LithologySegment, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	var (
		segments []*domain.LithologySegment
		found    bool
	)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		var columns []column
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			if columns == nil {
				if header := headerColumns(tr); header != nil {
					columns = header
				}
				return
			}

			cells := tr.Find("td")
			if cells.Length() == 0 {
				return
			}
			if seg := rowSegment(cells, columns); seg != nil {
				seg.ID = ids.NewID()
				segments = append(segments, seg)
			}
		})

		found = columns != nil
		return !found
	})

	if !found {
		return nil, ErrNoLogTable
	}
	if segments == nil {
		segments = []*domain.LithologySegment{}
	}
	return segments, nil
}

// headerColumns returns the column layout of tr, or nil if tr is not a
// header row with depth columns.
func headerColumns(tr *goquery.Selection) []column {
	cells := tr.Find("th")
	if cells.Length() == 0 {
		return nil
	}

	columns := make([]column, 0, cells.Length())
	hasStart, hasEnd, hasInterval := false, false, false
	cells.Each(func(_ int, th *goquery.Selection) {
		col := classifyHeader(th.Text())
		switch col {
		case colStart:
			hasStart = true
		case colEnd:
			hasEnd = true
		case colInterval:
			hasInterval = true
		}
		columns = append(columns, col)
	})

	if (hasStart && hasEnd) || hasInterval {
		return columns
	}
	return nil
}

func rowSegment(cells *goquery.Selection, columns []column) *domain.LithologySegment {
	seg := &domain.LithologySegment{}
	cells.Each(func(i int, td *goquery.Selection) {
		if i >= len(columns) {
			return
		}
		value := cellValue(td.Text())
		switch columns[i] {
		case colStart:
			seg.StartDepth = value
		case colEnd:
			seg.EndDepth = value
		case colInterval:
			seg.StartDepth, seg.EndDepth = splitInterval(value)
		case colFormation:
			seg.Formation = value
		case colDescription:
			seg.Description = value
			seg.UDMarker = hasUDMarker(value)
		case colRQD:
			seg.RQD = value
		case colWeathering:
			seg.Weathering = value
		case colLugeon:
			seg.Lugeon = value
		}
	})

	if seg.StartDepth == "" && seg.EndDepth == "" {
		return nil
	}
	if seg.Lugeon != "" {
		bst.SetSegmentLugeon(seg, seg.Lugeon)
	}
	return seg
}

// cellValue trims a cell and maps the "-" placeholder to an empty value.
func cellValue(raw string) string {
	v := strings.Join(strings.Fields(raw), " ")
	if v == "-" {
		return ""
	}
	return v
}

// splitInterval splits "1.50 - 3.00" into its two depths.
func splitInterval(v string) (string, string) {
	start, end, ok := strings.Cut(v, " - ")
	if !ok {
		start, end, ok = strings.Cut(v, "-")
	}
	if !ok {
		return strings.TrimSpace(v), ""
	}
	return strings.TrimSpace(start), strings.TrimSpace(end)
}

func hasUDMarker(description string) bool {
	for _, f := range strings.Fields(strings.ToUpper(description)) {
		if strings.Trim(f, "(),.;:") == "UD" {
			return true
		}
	}
	return false
}
