package biquad

// Stage is one slot of a filter cascade: a Section plus a bypass flag.
//
// While bypassed, ProcessSample and ProcessBlock are identity transforms and
// the delay line is not advanced, so re-enabling a stage resumes from the
// history it had when it was switched off.
type Stage struct {
	section  Section
	bypassed bool
}

// NewStage returns a bypassed stage holding identity coefficients.
func NewStage() *Stage {
	s := &Stage{}
	s.Init()
	return s
}

// Init puts a zero-value Stage into its initial state: bypassed, identity
// coefficients, cleared history. It is used for stages embedded by value.
func (s *Stage) Init() {
	s.section = Section{Coefficients: Identity()}
	s.bypassed = true
}

// SetCoefficients replaces the active coefficients. The delay line is kept.
func (s *Stage) SetCoefficients(c Coefficients) {
	s.section.Coefficients = c
}

// Coefficients returns a copy of the active coefficients.
func (s *Stage) Coefficients() Coefficients {
	return s.section.Coefficients
}

// SetBypassed switches the stage between enabled and bypassed.
func (s *Stage) SetBypassed(bypassed bool) {
	s.bypassed = bypassed
}

// Bypassed reports whether the stage currently passes samples unchanged.
func (s *Stage) Bypassed() bool {
	return s.bypassed
}

// ProcessSample filters one sample, or returns it unchanged when bypassed.
func (s *Stage) ProcessSample(x float64) float64 {
	if s.bypassed {
		return x
	}

	return s.section.ProcessSample(x)
}

// ProcessBlock filters buf in place unless the stage is bypassed.
func (s *Stage) ProcessBlock(buf []float64) {
	if s.bypassed {
		return
	}

	s.section.ProcessBlock(buf)
}

// Reset clears the delay line. Coefficients and bypass flag are untouched.
func (s *Stage) Reset() {
	s.section.Reset()
}

// State returns the delay-line state of the underlying section.
func (s *Stage) State() [2]float64 {
	return s.section.State()
}
