package cli

import (
	"github.com/spf13/cobra"

	"recruit-backend/internal/bootstrap"
	"recruit-backend/internal/shared/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the reviewer HTTP API",
	Long: `Start the HTTP server. With an upstream recruiting API configured the
reviewer routes proxy it; otherwise the recruiting contract is served in
process from DATABASE_URL, or from memory in dev.

Endpoints:
- GET  /api/v1/health
- GET  /api/v1/review/applications/:id
- GET  /api/v1/review/job-postings/:id/board?tab=
- POST /api/v1/review/annotate
- GET  /metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().String("database-url", "", "Postgres URL for local mode (overrides DATABASE_URL)")
	bindFlag(serveCmd, "PORT", "port", false)
	bindFlag(serveCmd, "DATABASE_URL", "database-url", false)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	app, err := bootstrap.Build(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return server.Serve(cmd.Context(), server.Addr(cfg.Port), app.Router)
}
