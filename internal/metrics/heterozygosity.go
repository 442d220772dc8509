package metrics

const NameHeterozygosity = "mean_heterozygosity"

// Heterozygosity averages 2p(1-p) over every observed generation.
type Heterozygosity struct {
	sum     float64
	samples int
}

func NewHeterozygosity() *Heterozygosity {
	return &Heterozygosity{}
}

func (h *Heterozygosity) Name() string { return NameHeterozygosity }

func (h *Heterozygosity) Observe(gen int, p float64) {
	h.sum += 2 * p * (1 - p)
	h.samples++
}

func (h *Heterozygosity) Value() float64 {
	if h.samples == 0 {
		return 0
	}
	return h.sum / float64(h.samples)
}

func (h *Heterozygosity) Reset() {
	h.sum = 0
	h.samples = 0
}
