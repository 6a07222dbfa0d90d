package param

// Declaration describes one parameter before it is added to a [Store].
type Declaration struct {
	Name    string
	Unit    string
	Range   Range
	Default float64
	Choices []string
}

// Layout is an ordered list of parameter declarations.
type Layout struct {
	decls []Declaration
}

// Float declares a continuous parameter.
func (l *Layout) Float(name, unit string, r Range, def float64) *Layout {
	l.decls = append(l.decls, Declaration{Name: name, Unit: unit, Range: r, Default: def})
	return l
}

// Choice declares a parameter selecting one of choices by index.
func (l *Layout) Choice(name string, choices []string, def int) *Layout {
	hi := float64(len(choices) - 1)
	l.decls = append(l.decls, Declaration{
		Name:    name,
		Range:   Range{Min: 0, Max: hi, Interval: 1, Skew: 1},
		Default: float64(def),
		Choices: append([]string(nil), choices...),
	})

	return l
}

// Declarations returns the declarations in order.
func (l *Layout) Declarations() []Declaration {
	return append([]Declaration(nil), l.decls...)
}

// Len returns the number of declarations.
func (l *Layout) Len() int { return len(l.decls) }
