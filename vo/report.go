package vo

// DocumentReport holds the outcome for one scanned document. Error and
// Links are mutually exclusive: a document that could not be read or
// parsed carries an error and no references.
type DocumentReport struct {
	File  string             `json:"file"`
	Title string             `json:"title,omitempty"`
	Error string             `json:"error,omitempty"`
	Links []CheckedReference `json:"links"`
}

func (d DocumentReport) BrokenCount() (n int) {
	for _, l := range d.Links {
		if l.Status == StatusBroken {
			n++
		}
	}
	return
}

// RunReport is one DocumentReport per input document, in enumeration order.
type RunReport []DocumentReport

type Totals struct {
	Files  int
	Links  int
	Broken int
}

func (r RunReport) Totals() Totals {
	t := Totals{Files: len(r)}
	for _, doc := range r {
		t.Links += len(doc.Links)
		t.Broken += doc.BrokenCount()
	}
	return t
}

func (r RunReport) HasBroken() bool {
	return r.Totals().Broken > 0
}
