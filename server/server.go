package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"distill/model"
	"distill/still"
	"distill/substance"
)

type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	still       *still.Still
	catalog     *substance.Catalog
	historySize int
}

func NewServer(addr string, upgrader websocket.Upgrader, st *still.Still, catalog *substance.Catalog, historySize int) *Server {
	return &Server{
		addr:        addr,
		upgrader:    upgrader,
		still:       st,
		catalog:     catalog,
		historySize: historySize,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	hub := NewHub(s.still, s.catalog, s.historySize)
	hub.conn = conn
	defer close(hub.done)

	log.WithFields(log.Fields{
		"remote": r.RemoteAddr,
	}).Info("连接建立")
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithFields(log.Fields{
				"remote": r.RemoteAddr,
			}).WithError(err).Info("连接断开")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithFields(log.Fields{
		"addr": s.addr,
	}).Info("服务启动")
	return http.ListenAndServe(s.addr, s.Handler())
}
