package gradient

import "fmt"

// Measurement is one quantification input record: the peak area of a protein
// in a single fraction of one sample layer.
type Measurement struct {
	Sample    int // 1-based
	Layer     Layer
	Fraction  int // 1-based, always 1..10
	Accession string
	Area      float64
}

// MalformedRecordError reports a quantification record that cannot be
// trusted. Load aborts on the first one; partial input is never kept.
type MalformedRecordError struct {
	Line    int // 0 when unknown
	Field   string
	Message string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed record at line %d: %s: %s", e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("malformed record: %s: %s", e.Field, e.Message)
}

// Catalog is the quantification store for one run. It exclusively owns every
// per-protein record; derived analysis state lives elsewhere and is
// recomputed per protein.
type Catalog struct {
	mode     Mode
	proteins map[string]*Protein
	order    []string
}

// Mode returns the fraction resolution the catalog was loaded in.
func (c *Catalog) Mode() Mode { return c.mode }

// Len returns the number of proteins in the catalog.
func (c *Catalog) Len() int { return len(c.order) }

// Accessions returns every accession in first-seen order.
func (c *Catalog) Accessions() []string { return c.order }

// Get looks up one protein by accession.
func (c *Catalog) Get(accession string) (*Protein, bool) {
	p, ok := c.proteins[accession]
	return p, ok
}

func checkMeasurement(m Measurement) error {
	if m.Sample < 1 || m.Sample > NumSamples {
		return &MalformedRecordError{Field: "sample", Message: fmt.Sprintf("sample %d out of range", m.Sample)}
	}
	if m.Layer != LayerUpper && m.Layer != LayerLower {
		return &MalformedRecordError{Field: "layer", Message: fmt.Sprintf("unknown layer %d", m.Layer)}
	}
	if m.Fraction < 1 || m.Fraction > FractionsMeasured {
		return &MalformedRecordError{Field: "fraction", Message: fmt.Sprintf("fraction %d out of range", m.Fraction)}
	}
	if m.Accession == "" {
		return &MalformedRecordError{Field: "accession", Message: "empty accession"}
	}
	if m.Area < 0 {
		return &MalformedRecordError{Field: "area", Message: fmt.Sprintf("negative area %g", m.Area)}
	}
	return nil
}

// Load builds the catalog from measurement records in two passes: a
// discovery pass that registers every accession, then a fill pass that
// stores the areas. Any fraction no record touches stays marked missing, so
// after Load every slot of every record is defined. In 16-fraction mode each
// record is remapped into the physical layout before the log transform.
func Load(measurements []Measurement, mode Mode) (*Catalog, error) {
	cat := &Catalog{mode: mode, proteins: make(map[string]*Protein)}

	for _, m := range measurements {
		if err := checkMeasurement(m); err != nil {
			return nil, err
		}
		if _, ok := cat.proteins[m.Accession]; !ok {
			cat.proteins[m.Accession] = &Protein{Accession: m.Accession, Raw: NewQuantRecord()}
			cat.order = append(cat.order, m.Accession)
		}
	}

	for _, m := range measurements {
		p, ok := cat.proteins[m.Accession]
		if !ok {
			return nil, &MalformedRecordError{
				Field:   "accession",
				Message: fmt.Sprintf("%s not seen in discovery pass", m.Accession),
			}
		}
		p.Raw[LinearIndex(m.Sample, m.Layer, m.Fraction)] = m.Area
	}

	for _, acc := range cat.order {
		p := cat.proteins[acc]
		if mode == Mode16 {
			p.Raw = Remap(p.Raw)
		}
		p.Log = LogTransform(p.Raw)
	}
	return cat, nil
}
