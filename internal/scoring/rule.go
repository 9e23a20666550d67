package scoring

// Rule pairs a band predicate with the category it assigns.
type Rule[T any] struct {
	Name   string
	Result T
	Match  func(Profile) bool
}

// Cascade is an ordered rule table with a fallback. The first matching rule
// decides the result.
type Cascade[T any] struct {
	Rules    []Rule[T]
	Fallback T
}

// Classify returns the result of the first matching rule, or the fallback.
func (c Cascade[T]) Classify(p Profile) T {
	for _, r := range c.Rules {
		if r.Match(p) {
			return r.Result
		}
	}
	return c.Fallback
}

// Matching returns the names of every rule p satisfies, in table order.
func (c Cascade[T]) Matching(p Profile) []string {
	var names []string
	for _, r := range c.Rules {
		if r.Match(p) {
			names = append(names, r.Name)
		}
	}
	return names
}
