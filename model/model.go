package model

// Parameter records, one per generator. Field names double as the JSON keys
// the front-end sends in Msg.Content.

// Antoine 蒸气压曲线
type AntoineParams struct {
	Substance string  `json:"substance"`
	MinT      float64 `json:"min_t"` // °C
	MaxT      float64 `json:"max_t"` // °C
}

// McCabe-Thiele 图
type McCabeThieleParams struct {
	Alpha       float64 `json:"alpha"`        // 相对挥发度
	RefluxRatio float64 `json:"reflux_ratio"` // 回流比
	XD          float64 `json:"xd"`           // 塔顶产品组成
}

// 加热曲线
type HeatingParams struct {
	T0       float64 `json:"t0"`
	TMax     float64 `json:"t_max"`
	K        float64 `json:"k"`
	Duration int     `json:"duration"` // min
}

// 电导率曲线
type ConductivityParams struct {
	Initial  float64 `json:"initial"` // µS/cm
	Final    float64 `json:"final"`
	K        float64 `json:"k"`
	Duration int     `json:"duration"`
}

// 产水量曲线
type FlowParams struct {
	Power      float64 `json:"power"` // W
	Efficiency float64 `json:"efficiency"`
	Duration   int     `json:"duration"`
}

// 能耗与电费
type PowerParams struct {
	Power      float64 `json:"power"`
	CostPerKwh float64 `json:"cost_per_kwh"`
	Duration   int     `json:"duration"`
}

// Rayleigh 间歇蒸馏
type RayleighParams struct {
	Alpha     float64 `json:"alpha"`
	InitialF  float64 `json:"initial_f"`  // 初始投料量
	InitialXf float64 `json:"initial_xf"` // 初始易挥发组分摩尔分数
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// SeriesData is the Content of a successful generation reply.
type SeriesData struct {
	Kind   string `json:"kind"`
	Axis   string `json:"axis"`
	Series Series `json:"series"`
}
