package input

import (
	"fmt"

	"github.com/ja-he/quickedit/internal/control/action"
)

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	x
//	+-y
//	| +-z   -> action1          "xyz" -> action1
//	+-z     -> action2          "xz"  -> action2
//	z       -> action3          "z"   -> action3
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action or advanced in a sequence based on the input.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether this tree is in the middle of a sequence.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// ConstructInputTree constructs a Tree for the given mappings of input
// sequence strings to actions.
// A sequence that is empty, unparseable, or a prefix of another sequence is
// an error.
func ConstructInputTree(spec map[Keyspec]action.Action) (*Tree, error) {
	root := NewNode()

	for mapping, a := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec '%s': %w", mapping, err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec mapped to '%s'", a.Explain())
		}

		current := root
		for i, key := range sequence {
			if current.Action != nil {
				return nil, fmt.Errorf("keyspec '%s' extends a sequence that is already mapped", mapping)
			}
			next, ok := current.Children[key]
			if !ok {
				if i == len(sequence)-1 {
					next = NewLeaf(a)
				} else {
					next = NewNode()
				}
				current.Children[key] = next
			} else if i == len(sequence)-1 {
				return nil, fmt.Errorf("keyspec '%s' collides with another mapping", mapping)
			}
			current = next
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{
		Root:    root,
		Current: root,
	}
}
