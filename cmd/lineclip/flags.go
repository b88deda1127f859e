package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/lineclip"
)

// quadFlag is a flag.Value holding four integers written as "a,b,c,d".
type quadFlag [4]int

func parseQuad(s string) (quadFlag, error) {
	var q quadFlag
	parts := strings.Split(s, ",")
	if len(parts) != len(q) {
		return q, fmt.Errorf("want 4 comma-separated integers, got %q", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return q, fmt.Errorf("coordinate %d of %q: %w", i+1, s, err)
		}
		q[i] = v
	}
	return q, nil
}

func (q *quadFlag) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", q[0], q[1], q[2], q[3])
}

func (q *quadFlag) Set(s string) error {
	v, err := parseQuad(s)
	if err != nil {
		return err
	}
	*q = v
	return nil
}

func (q quadFlag) start() lineclip.Point  { return lineclip.Pt(q[0], q[1]) }
func (q quadFlag) finish() lineclip.Point { return lineclip.Pt(q[2], q[3]) }

// segmentList collects repeated -segment flags.
type segmentList []quadFlag

func (l *segmentList) String() string {
	parts := make([]string, len(*l))
	for i := range *l {
		parts[i] = (*l)[i].String()
	}
	return strings.Join(parts, " ")
}

func (l *segmentList) Set(s string) error {
	v, err := parseQuad(s)
	if err != nil {
		return err
	}
	*l = append(*l, v)
	return nil
}

func (l segmentList) segments() []lineclip.Segment {
	segs := make([]lineclip.Segment, len(l))
	for i, q := range l {
		segs[i] = lineclip.Seg(q.start(), q.finish())
	}
	return segs
}
