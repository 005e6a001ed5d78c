package animgen

import (
	"encoding/json"
	"io"

	"github.com/yacobolo/animgen"
)

// JSONVersion is the schema version of JSONOutput
const JSONVersion = "1"

// JSONOutput represents the structured JSON export schema.
// It carries no timestamp so identical params give identical output.
type JSONOutput struct {
	Version   string         `json:"version"`
	Animation string         `json:"animation"`
	Params    animgen.Params `json:"params"`
	Keyframes string         `json:"keyframes"`
	Config    string         `json:"config"`
	Classes   string         `json:"classes"`
	Preview   animgen.Style  `json:"preview"`
}

// WriteJSON writes every artifact of p as indented JSON
func WriteJSON(w io.Writer, p animgen.Params) error {
	output := buildJSONOutput(p)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts params to JSONOutput
func buildJSONOutput(p animgen.Params) JSONOutput {
	a := animgen.Render(p)
	return JSONOutput{
		Version:   JSONVersion,
		Animation: animgen.AnimationName,
		Params:    p,
		Keyframes: a.Keyframes,
		Config:    a.Config,
		Classes:   a.Classes,
		Preview:   a.Preview,
	}
}
