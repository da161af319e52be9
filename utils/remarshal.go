package utils

import (
	"encoding/json"
)

// Remarshal converts input into output through its JSON representation.
func Remarshal(input interface{}, output interface{}) (err error) {
	b, err := json.Marshal(input)
	if nil != err {
		return
	}
	return json.Unmarshal(b, output)
}
