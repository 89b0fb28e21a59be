package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgallion1/booksum/internal/config"
	"github.com/dgallion1/booksum/internal/studyplan"
)

var generate bool

var studyplanCmd = &cobra.Command{
	Use:   "studyplan <profile>",
	Short: "Build a study-plan prompt from a student profile",
	Long: `Studyplan reads a student profile (YAML or JSON) and prints the prompt for a
personalized study plan. With --generate the prompt is sent to the configured
model and the plan is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudyPlan(args[0])
	},
}

func init() {
	studyplanCmd.Flags().BoolVarP(&generate, "generate", "g", false, "send the prompt to the model and print the plan")
	studyplanCmd.Flags().StringVar(&provider, "provider", "", "summarization provider: openai or anthropic")
	studyplanCmd.Flags().StringVar(&model, "model", "", "model name override")
}

func runStudyPlan(path string) error {
	profile, err := studyplan.LoadProfile(path)
	if err != nil {
		return err
	}
	prompt, err := studyplan.Build(profile)
	if err != nil {
		return err
	}
	if !generate {
		fmt.Println(prompt)
		return nil
	}

	log := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("generating study plan", "student", profile.StudentName, "model", client.Model())
	plan, err := client.Complete(ctx, "", prompt)
	if err != nil {
		return fmt.Errorf("generate study plan: %w", err)
	}
	fmt.Println(plan)
	return nil
}
