package solid

// ParamError reports a parameter rejected by a builder. The failure is
// fatal to that construction only; sibling constructions in a composite
// scene are unaffected.
type ParamError struct {
	Fn     string // builder that rejected the parameter
	Param  string // name of the offending parameter
	Reason string
}

func (e *ParamError) Error() string {
	return e.Fn + ": invalid " + e.Param + ": " + e.Reason
}
