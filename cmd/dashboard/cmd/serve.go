package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// serveCmd runs the API server as a child process
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Starts the HTTP API server (cmd/api). Stop with Ctrl+C.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("Starting API server...")

	apiCmd := exec.Command("go", "run", "./cmd/api")
	apiCmd.Stdout = os.Stdout
	apiCmd.Stderr = os.Stderr
	apiCmd.Env = os.Environ()

	if err := apiCmd.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("Stopping API server...")
	if apiCmd.Process != nil {
		apiCmd.Process.Signal(syscall.SIGTERM)
	}
	return apiCmd.Wait()
}
