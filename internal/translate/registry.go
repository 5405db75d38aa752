package translate

// identSet records which variable names have been declared so far within a
// single translation. INPUT and the target of LET declare a name on first
// sight; every other mention must find the name already present.
type identSet map[string]struct{}

func (s identSet) declare(name string) {
	s[name] = struct{}{}
}

func (s identSet) declared(name string) bool {
	_, ok := s[name]
	return ok
}
