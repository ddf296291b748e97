package build

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/driftdata/driftgen/pkg/core"
)

// TimeLayout is the canonical format for generated date-time values.
const TimeLayout = time.RFC3339

// GeneratorFunc produces one value for a spec using the shared faker.
type GeneratorFunc func(f *gofakeit.Faker, s core.ColumnSpec) (any, error)

// Registry resolves (category, kind) pairs to generator functions. It is
// the default core.ValueGenerator implementation, backed by gofakeit.
type Registry struct {
	faker      *gofakeit.Faker
	generators map[string]GeneratorFunc
}

// NewRegistry creates a registry with the built-in generators registered.
func NewRegistry(f *gofakeit.Faker) *Registry {
	r := &Registry{
		faker:      f,
		generators: make(map[string]GeneratorFunc),
	}
	r.registerBuiltins()
	return r
}

// DefaultRegistry uses an unseeded faker. Callers needing reproducible
// values construct their own registry around gofakeit.New(seed).
var DefaultRegistry = NewRegistry(gofakeit.New(0))

// Register registers a generator for a (category, kind) pair, replacing
// any existing registration.
func (r *Registry) Register(category, kind string, fn GeneratorFunc) {
	r.generators[generatorKey(category, kind)] = fn
}

// Generate implements core.ValueGenerator.
func (r *Registry) Generate(s core.ColumnSpec) (any, error) {
	fn, ok := r.generators[generatorKey(s.Category, s.Kind)]
	if !ok {
		return nil, fmt.Errorf("no generator registered for %s.%s", s.Category, s.Kind)
	}
	return fn(r.faker, s)
}

func generatorKey(category, kind string) string {
	return category + "." + kind
}

func (r *Registry) registerBuiltins() {
	r.Register("person", "name", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.Name(), nil
	})
	r.Register("person", "email", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.Email(), nil
	})
	r.Register("person", "phone", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.Phone(), nil
	})
	r.Register("company", "name", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.Company(), nil
	})
	r.Register("string", "uuid", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.UUID(), nil
	})
	r.Register("string", "word", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.Word(), nil
	})
	r.Register("number", "int", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		min := intParam(s, 0, "min", 1)
		max := intParam(s, 1, "max", 1000000)
		if max < min {
			return nil, fmt.Errorf("number.int: max %d < min %d", max, min)
		}
		return f.Number(min, max), nil
	})
	// finance.amount emits a formatted string so numeric_conversion has
	// something to coerce, matching how faker-style amounts arrive.
	r.Register("finance", "amount", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		min := floatParam(s, 0, "min", 1)
		max := floatParam(s, 1, "max", 1000)
		if max < min {
			return nil, fmt.Errorf("finance.amount: max %v < min %v", max, min)
		}
		decimals := s.DecimalPlaces
		if decimals <= 0 {
			decimals = 2
		}
		return fmt.Sprintf("%.*f", decimals, f.Price(min, max)), nil
	})
	r.Register("finance", "account", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.AchAccount(), nil
	})
	r.Register("datetime", "past", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		end := time.Now()
		start := end.AddDate(-1, 0, 0)
		return f.DateRange(start, end).Format(TimeLayout), nil
	})
	r.Register("datetime", "between", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		start, err := timeParam(s, 0, "start")
		if err != nil {
			return nil, err
		}
		end, err := timeParam(s, 1, "end")
		if err != nil {
			return nil, err
		}
		return f.DateRange(start, end).Format(TimeLayout), nil
	})
	r.Register("address", "latitude", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.Latitude(), nil
	})
	r.Register("address", "longitude", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.Longitude(), nil
	})
	r.Register("address", "city", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.City(), nil
	})
	r.Register("address", "state", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return f.State(), nil
	})
}
