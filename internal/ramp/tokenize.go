package ramp

// TokenSet holds the five syntactic slots of a raw RAMP string, values
// verbatim. Produced by a single left-to-right scan; slot boundaries are
// fixed by the structural characters, never by backtracking.
type TokenSet struct {
	IsPerson bool
	Layer    string
	Protocol string
	Params   []string
	HasMeta  bool
	Meta     string
}

// Tokenize splits raw into its syntactic slots.
//
//	address     := ["~"] layer "/" protocol [":" param_list] ["#" metadata]
//	param_list  := param ["/" param]
//
// Any grammar violation yields a *SyntaxError carrying the byte offset of the
// offending character.
func Tokenize(raw string) (TokenSet, error) {
	var ts TokenSet
	i := 0
	if i < len(raw) && raw[i] == '~' {
		ts.IsPerson = true
		i++
	}

	if i >= len(raw) || structural(raw[i]) {
		return TokenSet{}, &SyntaxError{Pos: i, Reason: ReasonEmptyLayer}
	}
	ts.Layer = raw[i : i+1]
	i++
	if i >= len(raw) || raw[i] != '/' {
		return TokenSet{}, &SyntaxError{Pos: i, Reason: ReasonMissingSeparator}
	}
	i++

	if i >= len(raw) || structural(raw[i]) {
		return TokenSet{}, &SyntaxError{Pos: i, Reason: ReasonEmptyProtocol}
	}
	ts.Protocol = raw[i : i+1]
	i++

	if i < len(raw) && raw[i] == ':' {
		params, next, err := scanParams(raw, i+1)
		if err != nil {
			return TokenSet{}, err
		}
		ts.Params = params
		i = next
	}

	if i < len(raw) {
		if raw[i] != '#' {
			return TokenSet{}, &SyntaxError{Pos: i, Reason: ReasonMissingSeparator}
		}
		meta, err := scanMeta(raw, i+1)
		if err != nil {
			return TokenSet{}, err
		}
		ts.HasMeta = true
		ts.Meta = meta
	}

	return ts, nil
}

func structural(c byte) bool {
	return c == '/' || c == ':' || c == '#'
}

// scanParams consumes the param_list starting at i (first byte after ':')
// and returns the slots plus the index of the terminating '#' or end of
// input. A third '/'-delimited segment is a syntax error, not a silent drop.
func scanParams(raw string, i int) ([]string, int, error) {
	params := make([]string, 0, 2)
	start := i
	for i < len(raw) && raw[i] != '#' {
		if raw[i] == '/' {
			if i == start {
				return nil, 0, &SyntaxError{Pos: start, Reason: ReasonEmptyParameter}
			}
			if len(params) == 1 {
				return nil, 0, &SyntaxError{Pos: i, Reason: ReasonTooManyParameters}
			}
			params = append(params, raw[start:i])
			start = i + 1
		}
		i++
	}
	if i == start {
		return nil, 0, &SyntaxError{Pos: start, Reason: ReasonEmptyParameter}
	}
	params = append(params, raw[start:i])
	return params, i, nil
}

func scanMeta(raw string, i int) (string, error) {
	start := i
	for ; i < len(raw); i++ {
		if raw[i] == '#' {
			return "", &SyntaxError{Pos: i, Reason: ReasonMultipleMetadataMarkers}
		}
	}
	if start == len(raw) {
		return "", &SyntaxError{Pos: start, Reason: ReasonEmptyMetadata}
	}
	return raw[start:], nil
}
