package dump

// Variable is a CMake variable.
type Variable struct {
	Name  string `json:"name"  yaml:"name"  msgpack:"name"`
	Value string `json:"value" yaml:"value" msgpack:"value"`
}

// ParseVariables deserializes the variables section of lines.
//
// Every line between [VariablesStart] and [VariablesEnd] defines one
// variable. When a name repeats, the later value wins and the name keeps its
// original position.
func ParseVariables(lines []string) (*Index[Variable], error) {
	raw, err := section(lines, "variables", VariablesStart, VariablesEnd)
	if err != nil {
		return nil, err
	}

	vars := newIndex[Variable]()

	for _, line := range raw {
		name, value := splitAssignment(line)
		vars.set(name, Variable{Name: name, Value: value})
	}

	return vars, nil
}
