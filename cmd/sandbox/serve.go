package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"falling-sand/internal/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeScene  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve interactive sandboxes over SSH",
	Long: `Start an SSH server. Every connection gets its own world sized to the
client's terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sandbox/host_key

Examples:
  sandbox serve                  # Listen on the configured address
  sandbox serve --ssh :2222      # Listen on port 2222

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().StringVar(&flagServeScene, "scene", "", "Scene loaded into every new session")
}

func runServe(cmd *cobra.Command, _ []string) error {
	world, err := worldConfig(cmd, "")
	if err != nil {
		return err
	}
	scene, err := loadScene(flagServeScene)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("seed") {
		// Sessions draw their own seeds unless one was forced.
		world.Seed = 0
	}

	cfg := tui.SSHServerConfig{
		Address:     settings.Server.Address,
		HostKeyPath: settings.Server.HostKeyPath,
		IdleTimeout: time.Duration(settings.Server.IdleMinutes) * time.Minute,
		World:       world,
		TPS:         settings.TPS,
		Scene:       scene,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("sandbox-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving sandboxes on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe(ctx)
}
