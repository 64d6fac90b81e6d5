package editor

// Index holds the derived maps that make the vocab+merges graph queryable
// in O(1): which merge produces a token, which merges consume a token, and
// which ids are already taken.
//
// An Index is owned by exactly one Editor and is never shared between
// editor instances; Sync reads a source Editor's Model and Index directly
// and never mutates them.
type Index struct {
	// producer maps a token to the position of the merge rule whose output
	// is that token. At most one entry per token (invariant 3); on
	// duplicate outputs during BuildIndex the later merge wins.
	producer map[string]int

	// users maps a token to the set of merge positions that read it as
	// Left or Right.
	users map[string]map[int]struct{}

	usedIds map[TokenId]struct{}
	nextId  TokenId
}

// BuildIndex rebuilds an Index from scratch by scanning m.Vocab and
// m.Merges once. Used on load and after any batch operation that changes
// many merge positions at once (Validator's bulk removal, Remover's
// cascade), since patching producer/users for a mass renumbering of merge
// positions is more error-prone than a full rebuild.
func BuildIndex(m *Model) *Index {
	idx := &Index{
		producer: make(map[string]int, len(m.Merges)),
		users:    make(map[string]map[int]struct{}, len(m.Vocab)),
		usedIds:  make(map[TokenId]struct{}, len(m.Vocab)),
	}

	var maxId TokenId = -1
	for _, id := range m.Vocab {
		idx.usedIds[id] = struct{}{}
		if id > maxId {
			maxId = id
		}
	}
	idx.nextId = maxId + 1

	for i, merge := range m.Merges {
		idx.producer[merge.Output()] = i
		idx.addUser(merge.Left, i)
		idx.addUser(merge.Right, i)
	}

	return idx
}

func (idx *Index) addUser(tok string, pos int) {
	set, ok := idx.users[tok]
	if !ok {
		set = make(map[int]struct{})
		idx.users[tok] = set
	}
	set[pos] = struct{}{}
}

// ProducerOf returns the merge position that produces tok, if any.
func (idx *Index) ProducerOf(tok string) (int, bool) {
	pos, ok := idx.producer[tok]
	return pos, ok
}

// UsersOf returns the set of merge positions that read tok as an operand.
// The returned slice has no guaranteed order.
func (idx *Index) UsersOf(tok string) []int {
	set := idx.users[tok]
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for pos := range set {
		out = append(out, pos)
	}
	return out
}

// HasId reports whether id is currently assigned to some token.
func (idx *Index) HasId(id TokenId) bool {
	_, ok := idx.usedIds[id]
	return ok
}

// NextId returns the next id AllocateId would hand out, without consuming
// it.
func (idx *Index) NextId() TokenId {
	return idx.nextId
}

// AllocateId returns the next free id and advances the allocator. Freed ids
// from removals are never recycled: monotonic allocation keeps stale
// references in downstream consumers easy to reason about.
func (idx *Index) AllocateId() TokenId {
	id := idx.nextId
	idx.usedIds[id] = struct{}{}
	idx.nextId++
	return id
}
