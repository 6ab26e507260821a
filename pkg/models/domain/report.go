package domain

// StatBundle is the nested key/value structure every report is made of.
// Bundles are built fresh on each call and never persisted; values are
// scalars, dates, short lists, or nested bundles. Key names are the
// platform's documented reporting vocabulary (totalDons,
// montantTotalCollecte, tauxReussite, ...).
type StatBundle map[string]any

// Merge copies every entry of other into b and returns b. Existing keys
// are overwritten.
func (b StatBundle) Merge(other StatBundle) StatBundle {
	for k, v := range other {
		b[k] = v
	}
	return b
}
