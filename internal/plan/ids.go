package plan

// NextID allocates the next integer ID for a collection: one more than the
// largest existing ID, or 0 for an empty collection. Both integer ID spaces
// (tasks/certifications and courses/milestones) are zero-based and follow
// this same max-plus-one rule, which keeps IDs unique under the app's
// single-writer model without global counters.
func NextID(existing []int) int {
	next := 0
	for _, id := range existing {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
