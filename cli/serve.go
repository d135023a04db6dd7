package cli

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"distill/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated series over websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, catalog, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := newStill(cmd, cfg)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr
			}

			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}
			s := server.NewServer(addr, upgrader, st, catalog, cfg.HistorySize)
			return s.Serve()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides [server] Addr)")
	return cmd
}
