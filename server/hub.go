package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"distill/calculator"
	"distill/deque"
	"distill/model"
	"distill/still"
	"distill/substance"
)

// 消息类型
const (
	TypeSubstances = "substances"
	TypeHistory    = "history"
	TypeStill      = "still"
	TypeDashboard  = "dashboard"
	TypeError      = "error"

	dataSuffix = "Data"
)

// Record is one entry of a connection's generation history.
type Record struct {
	Type   string    `json:"type"`
	Params string    `json:"params"`
	Axis   string    `json:"axis"`
	Points int       `json:"points"`
	At     time.Time `json:"at"`
}

type substanceInfo struct {
	substance.Substance
	BoilingPoint *float64 `json:"boiling_point"`
}

// Hub serves one websocket connection: requests are read into msg, turned
// into replies by handleRequest and written back by handleResponse.
type Hub struct {
	conn    *websocket.Conn
	still   *still.Still
	catalog *substance.Catalog
	history *deque.ArrDeque[Record]
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(st *still.Still, catalog *substance.Catalog, historySize int) *Hub {
	if catalog == nil {
		catalog = substance.Default()
	}
	return &Hub{
		still:   st,
		catalog: catalog,
		history: deque.NewArrDeque[Record](historySize),
		msg:     make(chan model.Msg, 10),
		reply:   make(chan model.Msg, 10),
		done:    make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithFields(log.Fields{
					"type": reply.Type,
				}).WithError(err).Warn("写回消息失败")
			}
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			reply := h.dispatch(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		}
	}
}

func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch {
	case calculator.IsModel(msg.Type):
		return h.generate(msg)
	case msg.Type == TypeSubstances:
		return h.substances()
	case msg.Type == TypeHistory:
		return h.listHistory()
	case msg.Type == TypeStill:
		return h.setStill(msg)
	case msg.Type == TypeDashboard:
		return h.dashboard()
	default:
		log.WithFields(log.Fields{
			"type": msg.Type,
		}).Warn("no such type")
		return errorReply(fmt.Errorf("no such type %q", msg.Type))
	}
}

func (h *Hub) generate(msg model.Msg) model.Msg {
	series, err := calculator.Generate(msg.Type, []byte(msg.Content), h.still, h.catalog)
	if err != nil {
		log.WithFields(log.Fields{
			"type":   msg.Type,
			"params": msg.Content,
		}).WithError(err).Info("拒绝计算请求")
		return errorReply(err)
	}

	data := model.SeriesData{
		Kind:   msg.Type,
		Axis:   series.AxisField(),
		Series: series,
	}
	h.history.PushFirst(Record{
		Type:   msg.Type,
		Params: msg.Content,
		Axis:   data.Axis,
		Points: len(series),
		At:     time.Now(),
	})
	return jsonReply(msg.Type+dataSuffix, data)
}

// dashboard generates every model from the current still defaults.
// Models that fail are left out and logged.
func (h *Hub) dashboard() model.Msg {
	results := calculator.GenerateAll(h.still, h.catalog, 0)
	data := make([]model.SeriesData, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			log.WithFields(log.Fields{
				"type": r.Name,
			}).WithError(r.Err).Warn("看板生成失败")
			continue
		}
		data = append(data, model.SeriesData{
			Kind:   r.Name,
			Axis:   r.Series.AxisField(),
			Series: r.Series,
		})
	}
	return jsonReply(TypeDashboard+dataSuffix, data)
}

func (h *Hub) substances() model.Msg {
	list := h.catalog.List()
	infos := make([]substanceInfo, 0, len(list))
	for _, s := range list {
		info := substanceInfo{Substance: s}
		if bp, err := s.NormalBoilingPoint(); err == nil {
			info.BoilingPoint = &bp
		}
		infos = append(infos, info)
	}
	return jsonReply(TypeSubstances+dataSuffix, infos)
}

func (h *Hub) listHistory() model.Msg {
	records := make([]Record, 0, h.history.Size())
	h.history.Traverse(func(_ int, r Record) {
		records = append(records, r)
	})
	return jsonReply(TypeHistory+dataSuffix, records)
}

func (h *Hub) setStill(msg model.Msg) model.Msg {
	cfg := h.still.Config()
	if msg.Content != "" {
		if err := json.Unmarshal([]byte(msg.Content), &cfg); err != nil {
			return errorReply(fmt.Errorf("decode still config: %w", err))
		}
		if err := h.still.SetConfig(cfg); err != nil {
			return errorReply(err)
		}
	}
	return jsonReply(TypeStill+dataSuffix, h.still.Config())
}

func jsonReply(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorReply(err)
	}
	return model.Msg{
		Type:    typ,
		Content: string(data),
	}
}

func errorReply(err error) model.Msg {
	return model.Msg{
		Type:    TypeError,
		Content: err.Error(),
	}
}
