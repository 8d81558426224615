package command

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfsink/clog"
	chttp "github.com/cayleygraph/rdfsink/internal/http"
)

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API on the given host and port.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host := viper.GetString(KeyHost)
			timeout := viper.GetDuration(KeyTimeout)
			srv := &http.Server{
				Addr:         host,
				Handler:      chttp.SetupRoutes(&chttp.Config{MaxBody: viper.GetInt64(KeyMaxBody)}),
				ReadTimeout:  timeout,
				WriteTimeout: timeout,
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				<-ctx.Done()
				srv.Close()
			}()
			phost := host
			if h, port, err := net.SplitHostPort(host); err == nil && h == "" {
				phost = net.JoinHostPort("localhost", port)
			}
			clog.Infof("listening on %s, API at http://%s/api/v1/convert", host, phost)
			err := srv.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().String("host", "127.0.0.1:64280", "host:port to listen on")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "read and write timeout of a request")
	cmd.Flags().Int64("max-body", 64<<20, "maximal request body size in bytes (0 for no limit)")
	viper.BindPFlag(KeyHost, cmd.Flags().Lookup("host"))
	viper.BindPFlag(KeyTimeout, cmd.Flags().Lookup("timeout"))
	viper.BindPFlag(KeyMaxBody, cmd.Flags().Lookup("max-body"))
	return cmd
}
