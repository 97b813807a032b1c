package value

// PriceTable maps appID → market hash name → unit price. A table is built
// once by a refresh cycle and replaced wholesale; it is never mutated in
// place, so readers may hold a snapshot across an evaluation.
type PriceTable map[int64]map[string]float64

// Lookup returns the unit price for an item, or 0 when either the app or the
// item is unknown. A missing price never fails an evaluation, it just
// contributes nothing to the offer value.
func (t PriceTable) Lookup(appID int64, marketHashName string) float64 {
	return t[appID][marketHashName]
}

// Items is the total number of priced items across all apps.
func (t PriceTable) Items() int {
	var n int
	for _, items := range t {
		n += len(items)
	}
	return n
}
