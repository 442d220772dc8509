package metrics

const (
	NameFixationTime   = "fixation_time"
	NameFinalFrequency = "final_frequency"
	NameFixed          = "fixed"
)

// FixationTime records the first generation at which the allele is fixed or
// lost. Value is -1 while the allele is still segregating.
type FixationTime struct {
	at int
}

func NewFixationTime() *FixationTime {
	return &FixationTime{at: -1}
}

func (f *FixationTime) Name() string { return NameFixationTime }

func (f *FixationTime) Observe(gen int, p float64) {
	if f.at < 0 && (p == 0 || p == 1) {
		f.at = gen
	}
}

func (f *FixationTime) Value() float64 { return float64(f.at) }

func (f *FixationTime) Reset() { f.at = -1 }

type FinalFrequency struct {
	last float64
	seen bool
}

func NewFinalFrequency() *FinalFrequency {
	return &FinalFrequency{}
}

func (f *FinalFrequency) Name() string { return NameFinalFrequency }

func (f *FinalFrequency) Observe(gen int, p float64) {
	f.last = p
	f.seen = true
}

func (f *FinalFrequency) Value() float64 {
	if !f.seen {
		return 0
	}
	return f.last
}

func (f *FinalFrequency) Reset() {
	f.last = 0
	f.seen = false
}

// Fixed is 1 when the last observed frequency is 1, otherwise 0.
type Fixed struct {
	last float64
}

func NewFixed() *Fixed {
	return &Fixed{}
}

func (f *Fixed) Name() string { return NameFixed }

func (f *Fixed) Observe(gen int, p float64) { f.last = p }

func (f *Fixed) Value() float64 {
	if f.last == 1 {
		return 1
	}
	return 0
}

func (f *Fixed) Reset() { f.last = 0 }
