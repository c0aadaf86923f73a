package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"rangeline/app"
	"rangeline/config"
	"rangeline/inspect"
	"rangeline/log"
	"rangeline/ruler"
)

var (
	version = "0.1.0"

	configFlag     string
	rulerCountFlag int
	rulerStepFlag  int
	noRulerFlag    bool
	leftFlag       float64
	rightFlag      float64
	hapticsFlag    string
	inspectFlag    string

	rootCmd = &cobra.Command{
		Use:   "rangeline",
		Short: "rangeline - A two-handle range slider for the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			log.Initialize(false)
			defer log.Close()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}
			if inspectFlag != "" {
				inspect.Enable(inspectFlag)
			}

			return app.Run(ctx, cfg)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset the config file to the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(true)
			defer log.Close()

			target := configFlag
			if target == "" {
				var err error
				if target, err = config.ConfigPath(); err != nil {
					return fmt.Errorf("failed to get config path: %w", err)
				}
			}
			if err := config.SaveConfigTo(config.DefaultConfig(), target); err != nil {
				return fmt.Errorf("failed to reset config: %w", err)
			}
			fmt.Printf("Config %s has been reset\n", target)
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(true)
			defer log.Close()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			configPath := configFlag
			if configPath == "" {
				if configPath, err = config.ConfigPath(); err != nil {
					return fmt.Errorf("failed to get config path: %w", err)
				}
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", configPath, configJson)
			fmt.Printf("Inspect file: %s\n", inspect.GetInspectFile())

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rangeline",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rangeline version %s\n", version)
		},
	}
)

// loadConfig reads --config when given and the user config otherwise.
func loadConfig() (*config.Config, error) {
	if configFlag == "" {
		return config.LoadConfig(), nil
	}
	cfg, err := config.LoadConfigFrom(configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyFlags lets the flags that were set override the config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("ruler-count") || flags.Changed("ruler-step") {
		count, step := rulerCountFlag, rulerStepFlag
		if cfg.Ruler != nil {
			if !flags.Changed("ruler-count") {
				count = cfg.Ruler.Count
			}
			if !flags.Changed("ruler-step") {
				step = cfg.Ruler.Step
			}
		}
		cfg.Ruler = ruler.New(count, step)
	}
	if noRulerFlag {
		cfg.Ruler = nil
	}
	if flags.Changed("left") {
		cfg.InitialLeft = leftFlag
	}
	if flags.Changed("right") {
		cfg.InitialRight = rightFlag
	}
	if flags.Changed("haptics") {
		cfg.Haptics = hapticsFlag
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Config file to use instead of ~/.rangeline/config.{toml,json}")
	rootCmd.Flags().IntVar(&rulerCountFlag, "ruler-count", 40, "Number of ruler ticks")
	rootCmd.Flags().IntVar(&rulerStepFlag, "ruler-step", 10, "Every step-th tick is a major tick")
	rootCmd.Flags().BoolVar(&noRulerFlag, "no-ruler", false, "Hide the ruler and disable tick feedback")
	rootCmd.Flags().Float64VarP(&leftFlag, "left", "l", 0.2, "Initial left end, in [0, 1]")
	rootCmd.Flags().Float64VarP(&rightFlag, "right", "r", 0.8, "Initial right end, in [0, 1]")
	rootCmd.Flags().StringVar(&hapticsFlag, "haptics", "",
		"Tick feedback: 'bell', 'log' or 'none'")
	rootCmd.Flags().StringVar(&inspectFlag, "inspect", "",
		"Write a UI snapshot to this file after every update")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
