package calculator

import (
	"encoding/json"
	"fmt"

	"distill/model"
	"distill/substance"
)

// 模型名称, 同时作为前端消息类型
const (
	ModelAntoine      = "antoine"
	ModelMcCabeThiele = "mccabeThiele"
	ModelHeating      = "heating"
	ModelConductivity = "conductivity"
	ModelFlow         = "flow"
	ModelPower        = "power"
	ModelRayleigh     = "rayleigh"
)

// Models lists every generator name accepted by Generate.
var Models = []string{
	ModelAntoine,
	ModelMcCabeThiele,
	ModelHeating,
	ModelConductivity,
	ModelFlow,
	ModelPower,
	ModelRayleigh,
}

// Defaults supplies the parameter record a request starts from. Fields in the
// request body override it.
type Defaults interface {
	AntoineParams() model.AntoineParams
	McCabeThieleParams() model.McCabeThieleParams
	HeatingParams() model.HeatingParams
	ConductivityParams() model.ConductivityParams
	FlowParams() model.FlowParams
	PowerParams() model.PowerParams
	RayleighParams() model.RayleighParams
}

// IsModel reports whether name is a known generator.
func IsModel(name string) bool {
	for _, m := range Models {
		if m == name {
			return true
		}
	}
	return false
}

// Generate decodes content (JSON, may be empty) over the defaults for the
// named model and runs the matching generator. d may be nil, in which case
// the request must carry every parameter. cat may be nil for the built-in
// substance catalog.
func Generate(name string, content []byte, d Defaults, cat *substance.Catalog) (model.Series, error) {
	switch name {
	case ModelAntoine:
		var p model.AntoineParams
		if d != nil {
			p = d.AntoineParams()
		}
		if err := decode(name, content, &p); err != nil {
			return nil, err
		}
		return GenerateAntoine(cat, p)
	case ModelMcCabeThiele:
		var p model.McCabeThieleParams
		if d != nil {
			p = d.McCabeThieleParams()
		}
		if err := decode(name, content, &p); err != nil {
			return nil, err
		}
		return GenerateMcCabeThiele(p)
	case ModelHeating:
		var p model.HeatingParams
		if d != nil {
			p = d.HeatingParams()
		}
		if err := decode(name, content, &p); err != nil {
			return nil, err
		}
		return GenerateHeating(p)
	case ModelConductivity:
		var p model.ConductivityParams
		if d != nil {
			p = d.ConductivityParams()
		}
		if err := decode(name, content, &p); err != nil {
			return nil, err
		}
		return GenerateConductivity(p)
	case ModelFlow:
		var p model.FlowParams
		if d != nil {
			p = d.FlowParams()
		}
		if err := decode(name, content, &p); err != nil {
			return nil, err
		}
		return GenerateFlow(p)
	case ModelPower:
		var p model.PowerParams
		if d != nil {
			p = d.PowerParams()
		}
		if err := decode(name, content, &p); err != nil {
			return nil, err
		}
		return GeneratePower(p)
	case ModelRayleigh:
		var p model.RayleighParams
		if d != nil {
			p = d.RayleighParams()
		}
		if err := decode(name, content, &p); err != nil {
			return nil, err
		}
		return GenerateRayleigh(p)
	default:
		return nil, &OpError{
			Op:   "calculator.generate",
			Kind: KindNotFound,
			Err:  fmt.Errorf("no such model %q", name),
		}
	}
}

func decode(name string, content []byte, v interface{}) error {
	if len(content) == 0 {
		return nil
	}
	if err := json.Unmarshal(content, v); err != nil {
		return invalidf("calculator."+name, "decode parameters: %v", err)
	}
	return nil
}
