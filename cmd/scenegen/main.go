package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spatialeval/scenegen/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scenegen",
		Short: "Scene-description generator for the simulated-physics testbed",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(materialsCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Expand the spec's definitions and emit a scene JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a generation spec without producing a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func materialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the registered material categories and shape types",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMaterials()
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local preview server",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
