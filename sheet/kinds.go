package sheet

import (
	"fmt"

	"github.com/fulldump/dyngrid/combiners"
	"github.com/fulldump/dyngrid/table"
	"github.com/fulldump/dyngrid/utils"
)

type KindInfo struct {
	Name            string   `json:"name"`
	Operators       []string `json:"operators"`
	DefaultOperator string   `json:"default_operator"`
}

type kind struct {
	info  KindInfo
	build func(operator string) (Sheet, error)
}

var kinds = map[string]kind{}

func register[R, C, V any](name, defaultOperator string, operators map[string]table.Combiner[R, C, V], checkRow func(R) error, checkCol func(C) error) {
	kinds[name] = kind{
		info: KindInfo{
			Name:            name,
			Operators:       utils.GetKeys(operators),
			DefaultOperator: defaultOperator,
		},
		build: func(operator string) (Sheet, error) {
			if operator == "" {
				operator = defaultOperator
			}
			op, exists := operators[operator]
			if !exists {
				return nil, fmt.Errorf("%w: '%s' for kind '%s'", ErrorOperatorNotFound, operator, name)
			}
			return &typed[R, C, V]{
				kind:      name,
				operator:  operator,
				operators: operators,
				checkRow:  checkRow,
				checkCol:  checkCol,
				table:     table.New(op),
			}, nil
		},
	}
}

func init() {
	register("int", "add", map[string]table.Combiner[int, int, int]{
		"add":      combiners.IntegerAdder,
		"multiply": combiners.IntegerTimer,
	}, nil, nil)

	register("string", "concat", map[string]table.Combiner[string, string, string]{
		"concat": combiners.StringAdder,
	}, nil, nil)

	register("repeat", "repeat", map[string]table.Combiner[string, int, string]{
		"repeat": combiners.StringTimer,
	}, nil, nil)

	register("count", "count", map[string]table.Combiner[string, string, int]{
		"count": combiners.SubstringCounter,
	}, nil, nil)

	register("color", "rg", map[string]table.Combiner[int, int, combiners.Color]{
		"rg": combiners.ColorRG,
		"rb": combiners.ColorRB,
		"gb": combiners.ColorGB,
	}, checkChannel, checkChannel)
}

func checkChannel(v int) error {
	if v < 0 || v > 255 {
		return fmt.Errorf("color channel %d must be in [0, 255]", v)
	}
	return nil
}

// New builds an empty sheet of the given kind. An empty operator selects the
// kind's default one.
func New(kindName, operator string) (Sheet, error) {
	k, exists := kinds[kindName]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", ErrorKindNotFound, kindName)
	}
	return k.build(operator)
}

// Kinds lists every registered kind sorted by name.
func Kinds() []KindInfo {
	result := make([]KindInfo, 0, len(kinds))
	for _, name := range utils.GetKeys(kinds) {
		result = append(result, kinds[name].info)
	}
	return result
}
