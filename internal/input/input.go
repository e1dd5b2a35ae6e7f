package input

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

const (
	MaxSize     = 100
	DefaultSize = 50
	// Random values fall in [MinValue, MaxValue].
	MinValue = 1
	MaxValue = 100
)

// Parse reads a comma-separated list of integers. Tokens are parsed first,
// so a bad token is reported before any length problem.
func Parse(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmpty
	}

	tokens := strings.Split(text, ",")
	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, ErrInvalidInput
		}
		values = append(values, v)
	}

	if err := Validate(values); err != nil {
		return nil, err
	}
	return values, nil
}

// Validate checks the length bounds of a sequence obtained elsewhere.
func Validate(values []int) error {
	if len(values) == 0 {
		return ErrEmpty
	}
	if len(values) > MaxSize {
		return ErrTooLarge
	}
	return nil
}

// Format renders values the way Parse reads them.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func Random(size int, rng *rand.Rand) []int {
	values := make([]int, size)
	for i := range values {
		values[i] = rng.Intn(MaxValue-MinValue+1) + MinValue
	}
	return values
}

var shapes = map[string]func(size int, rng *rand.Rand) []int{
	"random": Random,
	"sorted": func(size int, rng *rand.Rand) []int {
		values := Random(size, rng)
		sort.Ints(values)
		return values
	},
	"reversed": func(size int, rng *rand.Rand) []int {
		values := Random(size, rng)
		sort.Sort(sort.Reverse(sort.IntSlice(values)))
		return values
	},
	"constant": func(size int, rng *rand.Rand) []int {
		v := rng.Intn(MaxValue-MinValue+1) + MinValue
		values := make([]int, size)
		for i := range values {
			values[i] = v
		}
		return values
	},
	"few_unique": func(size int, rng *rand.Rand) []int {
		pool := []int{10, 40, 70, 100}
		values := make([]int, size)
		for i := range values {
			values[i] = pool[rng.Intn(len(pool))]
		}
		return values
	},
	"nearly_sorted": func(size int, rng *rand.Rand) []int {
		values := Random(size, rng)
		sort.Ints(values)
		for k := 0; k < size/10+1 && size > 1; k++ {
			i := rng.Intn(size - 1)
			values[i], values[i+1] = values[i+1], values[i]
		}
		return values
	},
}

// Shape generates a sequence of the named shape.
func Shape(name string, size int, rng *rand.Rand) ([]int, error) {
	fn, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("unknown shape: %s (available: %v)", name, ShapeNames())
	}
	if size < 0 || size > MaxSize {
		return nil, ErrTooLarge
	}
	return fn(size, rng), nil
}

func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
