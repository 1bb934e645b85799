package domain

// RecallFilter removes products whose name is on the recalled list.
// Names are compared byte for byte: no case folding, no trimming.
type RecallFilter struct {
	recalled map[string]struct{}
}

func NewRecallFilter(recalledNames map[string]struct{}) RecallFilter {
	return RecallFilter{recalled: recalledNames}
}

// RemoveRecalledFrom returns the products not recalled, in input order.
// The input slice is left untouched.
func (f RecallFilter) RemoveRecalledFrom(products []Product) []Product {
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if _, recalled := f.recalled[p.Name]; recalled {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// RecalledNames collects the recall names into a set. Expired is not
// consulted, so an expired recall still hides its products.
func RecalledNames(recalls []RecalledProduct) map[string]struct{} {
	names := make(map[string]struct{}, len(recalls))
	for _, r := range recalls {
		names[r.Name] = struct{}{}
	}
	return names
}
