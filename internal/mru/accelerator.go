package mru

// Capacity is the maximum number of tracked entries: one per mnemonic
// digit 1-9.
const Capacity = 9

// MnemonicFor maps a zero-based recency rank to its mnemonic digit.
func MnemonicFor(rank int) int {
	return rank + 1
}

// renumber reassigns every entry's mnemonic from its current rank. Always
// recomputed in full after a mutation so the persisted mnemonic-indexed
// store matches the in-memory order exactly.
func renumber(entries []*Entry) {
	for i, e := range entries {
		e.Mnemonic = MnemonicFor(i)
	}
}
