package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sokoban SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a level menu.
Solves are stored per-server (all users share the same records).

Host key handling:
  - If --host-key is provided (or server.host_key in the config), uses that key file
  - Otherwise, auto-generates a key at ~/.sokoban/host_key

Examples:
  sokoban serve                           # Listen on :23235 with auto-generated key
  sokoban serve --ssh :2222               # Listen on port 2222
  sokoban serve --host-key ./my_host_key  # Use specific host key
  sokoban serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	loader := newLoader(cfg)
	pack := loadPack(loader)

	// Flags win over the config file
	addr := cfg.Server.Address
	if cmd.Flags().Changed("ssh") {
		addr = flagSSHAddr
	}
	hostKey := cfg.Server.HostKeyPath
	if cmd.Flags().Changed("host-key") {
		hostKey = flagHostKey
	}
	hostKey, err := config.ExpandHome(hostKey)
	if err != nil {
		fail("%v", err)
	}
	idle := cfg.Server.IdleTimeout()
	if cmd.Flags().Changed("idle-timeout") {
		idle = time.Duration(flagIdleTimeout) * time.Minute
	}

	play := runtimeConfig(cfg, pack)

	srvCfg := tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		DBPath:      flagDBPath,
		IdleTimeout: idle,
		Loader:      loader,
		Play:        play,
		Logger:      newLogger(os.Stderr, "sokoban-ssh"),
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Sokoban SSH server on %s\n", srvCfg.Address)
	if _, port, splitErr := net.SplitHostPort(srvCfg.Address); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
