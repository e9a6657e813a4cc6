package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/stonewall-sec/auditscope/internal/server"
	"github.com/stonewall-sec/auditscope/internal/utils"
	"github.com/stonewall-sec/auditscope/pkg/view"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the audit catalog web interface",
	Long:  `Start a web server rendering the audit grid, its detail viewer and a JSON API.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("listen")

		reg := prometheus.NewRegistry()
		curated, agg, err := buildCatalog(reg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st := view.Mount(ctx, curated, agg)
		defer st.Close()
		go logWhenReady(ctx, st)

		return server.New(st, reg, utils.Log).Start(ctx, addr)
	},
}

// logWhenReady reports the settled catalog size. It returns without logging
// when ctx ends first, since a closed state never settles.
func logWhenReady(ctx context.Context, st *view.State) bool {
	select {
	case <-st.Done():
		utils.Log.Infof("Catalog ready with %d audits", len(st.Collection()))
		return true
	case <-ctx.Done():
		return false
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "b", ":9999", "Address to bind the server to")
}
