package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/internal/httpapi"
)

// serveCommand creates the read-only HTTP inspection server command.
func (c *CLI) serveCommand() *cobra.Command {
	var input, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP API (/stats, /scc, /nodes/{key}) over a loaded graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:         addr,
				Handler:      httpapi.New(g).Router(),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			ctx := cmd.Context()
			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			printInfo("serving on %s (%d nodes, %d edges)", addr, g.NodeCount(), g.EdgeCount())

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serve: %w", err)
			}
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")

	return cmd
}
