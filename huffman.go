package mpq

import "sort"

// The Huffman back-end decodes the archive format's adaptive Huffman
// variant. A payload starts with one type byte selecting an initial weight
// table, followed by a bit stream read least-significant-bit first. Two
// symbols extend the 256 byte values: an end-of-stream mark and an escape
// that introduces a byte not yet present in the tree as 8 raw bits. Type 0
// additionally re-weights the tree after every decoded byte.
const (
	huffEndOfStream = 0x100
	huffEscape      = 0x101
	huffSymbolCount = 0x102
)

// huffNode is a tree node; leaves carry a symbol value, interior nodes have
// both children set.
type huffNode struct {
	value  int
	weight uint32
	left   *huffNode
	right  *huffNode
}

// buildHuffTree constructs the canonical tree for the given weights by
// repeatedly merging the two lightest subtrees. Ordering ties break on the
// symbol value so that encoder and decoder derive the identical tree.
// Symbols with zero weight stay out of the tree and are reachable only via
// the escape code.
func buildHuffTree(weights *[huffSymbolCount]uint32) *huffNode {
	nodes := make([]*huffNode, 0, huffSymbolCount)
	for v, w := range weights {
		if w > 0 {
			nodes = append(nodes, &huffNode{value: v, weight: w})
		}
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].weight != nodes[j].weight {
			return nodes[i].weight < nodes[j].weight
		}
		return nodes[i].value < nodes[j].value
	})

	for len(nodes) > 1 {
		merged := &huffNode{
			value:  -1,
			weight: nodes[0].weight + nodes[1].weight,
			left:   nodes[0],
			right:  nodes[1],
		}
		nodes = nodes[1:]

		// Keep the worklist sorted; the merged subtree goes after any
		// equal-weight entries so ordering stays deterministic.
		i := sort.Search(len(nodes)-1, func(i int) bool {
			return nodes[i+1].weight > merged.weight
		})
		copy(nodes, nodes[1:i+1])
		nodes[i] = merged
	}
	return nodes[0]
}

// bitReader consumes a byte slice least-significant-bit first, the bit
// order the format's producers emit.
type bitReader struct {
	data []byte
	pos  int
	cur  uint32
	cnt  uint
}

func (r *bitReader) bit() (uint32, bool) {
	if r.cnt == 0 {
		if r.pos >= len(r.data) {
			return 0, false
		}
		r.cur = uint32(r.data[r.pos])
		r.pos++
		r.cnt = 8
	}
	b := r.cur & 1
	r.cur >>= 1
	r.cnt--
	return b, true
}

func (r *bitReader) bits(n uint) (uint32, bool) {
	var v uint32
	for i := uint(0); i < n; i++ {
		b, ok := r.bit()
		if !ok {
			return 0, false
		}
		v |= b << i
	}
	return v, true
}

// huffDecode decompresses a Huffman payload into at most max bytes.
// Decoding normally ends at the end-of-stream symbol; hitting max first is
// accepted because intermediate chain stages are sized generously and the
// final stage trims to the declared length.
func huffDecode(data []byte, max int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrHuffmanCorrupt
	}
	typ := int(data[0])
	if typ >= len(huffWeightTables) {
		return nil, ErrHuffmanCorrupt
	}

	var weights [huffSymbolCount]uint32
	for i, w := range huffWeightTables[typ] {
		weights[i] = uint32(w)
	}
	weights[huffEndOfStream] = 1
	weights[huffEscape] = 1

	adaptive := typ == 0
	tree := buildHuffTree(&weights)
	br := bitReader{data: data[1:]}

	cap0 := max
	if cap0 > 64<<10 {
		cap0 = 64 << 10
	}
	out := make([]byte, 0, cap0)

	for len(out) < max {
		node := tree
		for node.left != nil {
			b, ok := br.bit()
			if !ok {
				return nil, ErrHuffmanCorrupt
			}
			if b == 0 {
				node = node.left
			} else {
				node = node.right
			}
		}

		switch node.value {
		case huffEndOfStream:
			return out, nil

		case huffEscape:
			lit, ok := br.bits(8)
			if !ok {
				return nil, ErrHuffmanCorrupt
			}
			out = append(out, byte(lit))
			weights[lit]++
			tree = buildHuffTree(&weights)

		default:
			out = append(out, byte(node.value))
			if adaptive {
				weights[node.value]++
				tree = buildHuffTree(&weights)
			}
		}
	}
	return out, nil
}
