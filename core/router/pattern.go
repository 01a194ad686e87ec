package router

import (
	"fmt"
	"regexp"
	"strings"
)

type segmentTyp uint8

const (
	segStatic segmentTyp = iota
	segParam             // {id}
	segRegexp            // {id:[0-9]+}
	segCatchAll          // *
)

type segment struct {
	typ    segmentTyp
	value  string // static text or param key
	regexp *regexp.Regexp
}

// pattern is a compiled route path. Segments are separated by '/'; a
// segment is either static text, a whole-segment parameter, or a final '*'.
type pattern struct {
	raw      string
	segments []segment
	keys     []string
}

func (p *pattern) isStatic() bool {
	return len(p.keys) == 0
}

func compilePattern(raw string) (*pattern, error) {
	if raw == "" {
		raw = "/"
	}
	if raw[0] != '/' {
		return nil, fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPattern, raw)
	}

	parts := splitPath(raw)
	p := &pattern{raw: raw, segments: make([]segment, 0, len(parts))}

	for i, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, raw)
		}
		if seg.typ == segCatchAll && i != len(parts)-1 {
			return nil, fmt.Errorf("%w: %q", ErrWildcardPosition, raw)
		}
		if seg.typ != segStatic {
			for _, k := range p.keys {
				if k == seg.value {
					return nil, fmt.Errorf("%w: %q has duplicate key %q", ErrDuplicateParam, raw, k)
				}
			}
			p.keys = append(p.keys, seg.value)
		}
		p.segments = append(p.segments, seg)
	}
	return p, nil
}

func parseSegment(part string) (segment, error) {
	if part == "*" {
		return segment{typ: segCatchAll, value: "*"}, nil
	}
	if strings.Contains(part, "*") {
		return segment{}, ErrWildcardPosition
	}

	if !strings.HasPrefix(part, "{") {
		if strings.ContainsAny(part, "{}") {
			return segment{}, ErrInvalidPattern
		}
		return segment{typ: segStatic, value: part}, nil
	}
	if !strings.HasSuffix(part, "}") {
		return segment{}, ErrInvalidPattern
	}

	key, rexpat, isRegexp := strings.Cut(part[1:len(part)-1], ":")
	if key == "" {
		return segment{}, ErrInvalidPattern
	}
	if !isRegexp {
		return segment{typ: segParam, value: key}, nil
	}

	if len(rexpat) == 0 {
		return segment{}, ErrInvalidRegexp
	}
	if rexpat[0] != '^' {
		rexpat = "^" + rexpat
	}
	if rexpat[len(rexpat)-1] != '$' {
		rexpat += "$"
	}
	rx, err := regexp.Compile(rexpat)
	if err != nil {
		return segment{}, fmt.Errorf("%w: %w", ErrInvalidRegexp, err)
	}
	return segment{typ: segRegexp, value: key, regexp: rx}, nil
}

// match reports whether path matches and returns the captured parameters.
func (p *pattern) match(path string) (map[string]string, bool) {
	parts := splitPath(path)

	var params map[string]string
	capture := func(k, v string) {
		if params == nil {
			params = make(map[string]string, len(p.keys))
		}
		params[k] = v
	}

	for i, seg := range p.segments {
		if seg.typ == segCatchAll {
			capture(seg.value, strings.Join(parts[i:], "/"))
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}

		part := parts[i]
		switch seg.typ {
		case segStatic:
			if part != seg.value {
				return nil, false
			}
		case segParam:
			if part == "" {
				return nil, false
			}
			capture(seg.value, part)
		case segRegexp:
			if part == "" || !seg.regexp.MatchString(part) {
				return nil, false
			}
			capture(seg.value, part)
		}
	}

	if len(parts) != len(p.segments) {
		return nil, false
	}
	return params, true
}

func splitPath(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}
