// Package placement scatters the icon's letters inside the shield.
//
// The letter set is fixed: B, T and S in gold, A, R, M and Y in silver and
// lilac. [Layout] shuffles it, then places one letter at a time with a
// randomized trial-and-error [Search]: each trial draws a position, size and
// rotation, is scored by how far it leaves the shield bounds and how much it
// overlaps the letters already placed, and the lowest score wins. A trial
// that scores zero ends the search for that letter early.
//
// All randomness comes from a single seeded generator, so a seed fully
// determines the layout:
//
//	placements := placement.Layout(42, shield.DefaultBounds(), nil)
//	for _, p := range placements {
//	    fmt.Printf("%c at (%.0f, %.0f) size %.0f\n", p.Char, p.X, p.Y, p.Size)
//	}
package placement
