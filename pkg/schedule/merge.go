package schedule

// Merge folds ordinary passing time adjacent to lunch into the lunch block,
// so the displayed lunch duration covers the whole break. Inter-building
// passing neighbors are left alone since they carry their own meaning. Only
// the first lunch block of each column is merged.
func (s *Schedule) Merge() {
	for _, day := range s.Days {
		s.Blocks[day] = mergeLunch(s.Blocks[day])
	}
}

func mergeLunch(blocks []*Block) []*Block {
	lunch := -1
	for i, b := range blocks {
		if b.IsLunch() {
			lunch = i
			break
		}
	}
	if lunch < 0 {
		return blocks
	}

	absorbable := func(b *Block) bool {
		return b.IsPassing() && !b.IsSchoolPassing()
	}

	// Absorb the following neighbor first so the lunch index stays valid
	// for the preceding one.
	if lunch+1 < len(blocks) && absorbable(blocks[lunch+1]) {
		blocks[lunch].End = blocks[lunch+1].End
		blocks = append(blocks[:lunch+1], blocks[lunch+2:]...)
	}
	if lunch > 0 && absorbable(blocks[lunch-1]) {
		blocks[lunch].Start = blocks[lunch-1].Start
		blocks = append(blocks[:lunch-1], blocks[lunch:]...)
	}
	return blocks
}
