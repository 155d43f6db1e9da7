package pvst

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/ids"
)

// Write serialises t in the textual format of §6: one vertex per line,
// "vtx_id parent_id family clan route_params hairpin_flag", in
// ascending vertex id order so the root (id 0, parent "-") is first.
func Write(w io.Writer, t *Tree) error {
	bw := bufio.NewWriter(w)
	for id := 0; id < t.NumVertices(); id++ {
		v := t.Vertex(id)
		parent := "-"
		if v.Parent >= 0 {
			parent = strconv.Itoa(v.Parent)
		}
		route := "-"
		hairpin := "false"
		if v.Route != nil {
			route = fmt.Sprintf("%d,%s-%d,%s",
				uint32(v.Route.Start.V), v.Route.Start.End,
				uint32(v.Route.End.V), v.Route.End.End)
			hairpin = strconv.FormatBool(v.Route.HairpinFlag)
		}
		if _, err := fmt.Fprintf(bw, "%d %s %s %s %s %s\n", v.ID, parent, v.Family, v.Clan, route, hairpin); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses the format Write produces. Vertex ids must appear in
// ascending order starting at 0, the root, with parent "-".
func Read(r io.Reader) (*Tree, error) {
	sc := bufio.NewScanner(r)
	t := &Tree{}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, errs.New(errs.MalformedInput, "pvst: malformed line %q", line)
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errs.New(errs.MalformedInput, "pvst: bad vtx_id %q", fields[0])
		}
		if id != len(t.vertices) {
			return nil, errs.New(errs.MalformedInput, "pvst: vtx_id %d out of order, expected %d", id, len(t.vertices))
		}

		parent := -1
		if fields[1] != "-" {
			parent, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, errs.New(errs.MalformedInput, "pvst: bad parent_id %q", fields[1])
			}
		}

		family, err := parseFamily(fields[2])
		if err != nil {
			return nil, err
		}
		clan, err := parseClan(fields[3])
		if err != nil {
			return nil, err
		}

		var route *RouteParams
		if fields[4] != "-" {
			route, err = parseRoute(fields[4])
			if err != nil {
				return nil, err
			}
			route.HairpinFlag, err = strconv.ParseBool(fields[5])
			if err != nil {
				return nil, errs.New(errs.MalformedInput, "pvst: bad hairpin_flag %q", fields[5])
			}
		}

		v := Vertex{ID: id, Parent: parent, Family: family, Clan: clan, Route: route}
		t.vertices = append(t.vertices, v)
		if parent >= 0 {
			if parent >= len(t.vertices) {
				return nil, errs.New(errs.MalformedInput, "pvst: vertex %d names unknown parent %d", id, parent)
			}
			t.vertices[parent].children = append(t.vertices[parent].children, id)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(t.vertices) == 0 {
		return nil, errs.New(errs.MalformedInput, "pvst: empty input, no root vertex")
	}
	if t.vertices[0].Parent != -1 {
		return nil, errs.New(errs.MalformedInput, "pvst: root must have parent \"-\"")
	}
	return t, nil
}

func parseFamily(s string) (Family, error) {
	switch s {
	case "dummy":
		return FamilyDummy, nil
	case "flubble":
		return FamilyFlubble, nil
	case "tiny":
		return FamilyTiny, nil
	case "parallel":
		return FamilyParallel, nil
	case "concealed":
		return FamilyConcealed, nil
	case "smothered":
		return FamilySmothered, nil
	case "midi":
		return FamilyMidi, nil
	default:
		return 0, errs.New(errs.MalformedInput, "pvst: unknown family %q", s)
	}
}

func parseClan(s string) (Clan, error) {
	switch s {
	case "flubble":
		return ClanFlubble, nil
	case "subflubble":
		return ClanSubflubble, nil
	default:
		return 0, errs.New(errs.MalformedInput, "pvst: unknown clan %q", s)
	}
}

// parseRoute parses "start_v_id,start_end-end_v_id,end_end".
func parseRoute(s string) (*RouteParams, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, errs.New(errs.MalformedInput, "pvst: malformed route_params %q", s)
	}
	start, err := parseSide(parts[0])
	if err != nil {
		return nil, err
	}
	end, err := parseSide(parts[1])
	if err != nil {
		return nil, err
	}
	return &RouteParams{Start: start, End: end}, nil
}

func parseSide(s string) (Side, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Side{}, errs.New(errs.MalformedInput, "pvst: malformed side %q", s)
	}
	v, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Side{}, errs.New(errs.MalformedInput, "pvst: bad v_id %q", parts[0])
	}
	var end graph.End
	switch parts[1] {
	case "L":
		end = graph.L
	case "R":
		end = graph.R
	default:
		return Side{}, errs.New(errs.MalformedInput, "pvst: bad end %q", parts[1])
	}
	return Side{V: ids.ID(v), End: end}, nil
}
